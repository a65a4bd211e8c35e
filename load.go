package rawlinear

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// LoadRaw decodes the raw file at path into a linear RGB float32 image.
//
// Each call uses its own decoder, calls may run concurrently. On failure the returned
// error is an ErrArgument or a *StageError and no image is returned.
func LoadRaw(path string, opts ...func(o *Options)) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrArgument)
	}

	opt := &Options{}
	for _, applyOpt := range opts {
		applyOpt(opt)
	}

	cfg := Resolve(opt)
	logger := opt.logger()

	var img *Image
	err := decodeWith(path, cfg, opt.decoderFactory(), logger, func(native *NativeImage) error {
		var err error
		img, err = Pack(native)
		return err
	})
	if err != nil {
		logger.WithError(err).WithField("path", path).Debug("decode failed")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"path":       path,
		"width":      img.Width,
		"height":     img.Height,
		"colorSpace": cfg.ColorSpace.String(),
		"halfSize":   cfg.HalfSize,
	}).Debug("decoded")

	return img, nil
}

// LoadRawContext is LoadRaw with cancellation. The engine exposes no interruption point,
// so the decode keeps running on its own goroutine and a late result is discarded.
func LoadRawContext(ctx context.Context, path string, opts ...func(o *Options)) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		img *Image
		err error
	}

	done := make(chan result, 1)
	go func() {
		img, err := LoadRaw(path, opts...)
		done <- result{img: img, err: err}
	}()

	select {
	case res := <-done:
		return res.img, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// FileResult is an outcome of LoadRawFiles for a single path.
type FileResult struct {
	Path  string
	Image *Image
	Err   error
}

// LoadRawFiles decodes paths with up to workers concurrent sessions.
// Results keep the order of paths; a failed file does not stop the others.
func LoadRawFiles(ctx context.Context, paths []string, workers int, opts ...func(o *Options)) []FileResult {
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]FileResult, len(paths))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup

	for i, path := range paths {
		results[i].Path = path

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i].Image, results[i].Err = LoadRawContext(ctx, path, opts...)
		}(i, path)
	}

	wg.Wait()

	return results
}
