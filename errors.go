package rawlinear

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is returned for invalid call arguments, before any decoder interaction.
	ErrArgument = errors.New("invalid argument")

	ErrFileOpen    = errors.New("cannot open raw file")
	ErrUnpack      = errors.New("cannot unpack sensor data")
	ErrProcess     = errors.New("cannot process raw data")
	ErrMaterialize = errors.New("cannot create memory image")

	// ErrUnsupportedLayout is returned when the engine output cannot be packed as RGB.
	ErrUnsupportedLayout = errors.New("unsupported native image layout")

	// ErrNoEngine is returned by DefaultDecoder when the package is built without a raw engine.
	ErrNoEngine = errors.New("raw engine not available, build with -tags libraw")
)

// Stage names a step of the decode pipeline.
type Stage string

const (
	StageCreate      Stage = "create"
	StageOpen        Stage = "open"
	StageUnpack      Stage = "unpack"
	StageProcess     Stage = "process"
	StageMaterialize Stage = "materialize"
	StagePack        Stage = "pack"
)

var stageErrors = map[Stage]error{
	StageOpen:        ErrFileOpen,
	StageUnpack:      ErrUnpack,
	StageProcess:     ErrProcess,
	StageMaterialize: ErrMaterialize,
}

// StageError reports a failed pipeline stage.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the failed stage, so errors.Is(err, ErrUnpack)
// holds for any unpack failure regardless of the engine error.
func (e *StageError) Is(target error) bool {
	s, ok := stageErrors[e.Stage]
	return ok && s == target
}

func stageError(stage Stage, path string, err error) error {
	return &StageError{Stage: stage, Path: path, Err: err}
}
