package rawlinear

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// session drives one decoder from Open to Release.
type session struct {
	path string
	dec  Decoder
	log  logrus.FieldLogger
}

// decodeWith runs the decode lifecycle for path and passes the materialized image to use.
// The image is released exactly once after use returns, on every path.
func decodeWith(path string, cfg Config, newDecoder DecoderFactory, logger logrus.FieldLogger, use func(img *NativeImage) error) error {
	dec, err := newDecoder(cfg)
	if err != nil {
		return stageError(StageCreate, path, err)
	}
	if dec == nil {
		return stageError(StageCreate, path, errors.New("decoder factory returned nil"))
	}

	if c, ok := dec.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logger.WithError(err).WithField("path", path).Warn("close decoder")
			}
		}()
	}

	s := session{path: path, dec: dec, log: logger}

	img, err := s.materialize()
	if err != nil {
		return err
	}

	defer s.release(img)

	return s.step(StagePack, func() error { return use(img) })
}

func (s *session) materialize() (*NativeImage, error) {
	if err := s.step(StageOpen, func() error { return s.dec.Open(s.path) }); err != nil {
		return nil, err
	}
	if err := s.step(StageUnpack, s.dec.Unpack); err != nil {
		return nil, err
	}
	if err := s.step(StageProcess, s.dec.Process); err != nil {
		return nil, err
	}

	var img *NativeImage
	err := s.step(StageMaterialize, func() error {
		var err error
		img, err = s.dec.MemImage()
		if err == nil && img == nil {
			err = errors.New("decoder returned no image")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"path":     s.path,
		"width":    img.Width,
		"height":   img.Height,
		"channels": img.Channels,
		"bits":     img.Bits,
	}).Debug("memory image")

	return img, nil
}

func (s *session) step(stage Stage, fn func() error) error {
	start := time.Now()
	if err := fn(); err != nil {
		var se *StageError
		if errors.As(err, &se) {
			return err
		}
		return stageError(stage, s.path, err)
	}
	s.log.WithFields(logrus.Fields{
		"stage":   stage,
		"path":    s.path,
		"elapsed": time.Since(start),
	}).Debug("stage done")
	return nil
}

func (s *session) release(img *NativeImage) {
	s.dec.Release(img)
	s.log.WithField("path", s.path).Debug("memory image released")
}
