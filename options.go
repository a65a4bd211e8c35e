package rawlinear

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Resolve derives the decode policy from caller options. It never fails,
// a nil opt yields the defaults.
func Resolve(opt *Options) Config {
	cfg := Config{
		ColorSpace:   defaultColorSpace,
		OutputBPS:    outputBPS,
		Quality:      userQuality,
		Highlight:    highlightOff,
		NoAutoBright: true,
		Threshold:    noiseThresh,
		Gamma:        [2]float64{linearGamma, linearGamma},
	}
	if opt == nil {
		return cfg
	}
	if opt.ColorSpace != "" {
		cfg.ColorSpace = ParseColorSpace(opt.ColorSpace)
	}
	cfg.HalfSize = opt.HalfSize
	return cfg
}

func (o *Options) logger() logrus.FieldLogger {
	if o == nil || o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return o.Logger
}

func (o *Options) decoderFactory() DecoderFactory {
	if o == nil || o.NewDecoder == nil {
		return DefaultDecoder
	}
	return o.NewDecoder
}
