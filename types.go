package rawlinear

import "github.com/sirupsen/logrus"

// ColorSpace is the output color space code understood by the raw engine.
type ColorSpace int

const (
	ColorSpaceRaw ColorSpace = iota
	ColorSpaceSRGB
	ColorSpaceAdobe
	ColorSpaceWide
	ColorSpaceProPhoto
	ColorSpaceXYZ
	ColorSpaceACES
)

// Options controls a single LoadRaw call.
type Options struct {
	// ColorSpace is one of raw, srgb, adobe, wide, prophoto, xyz, aces.
	// Unknown tokens fall back to xyz.
	ColorSpace string
	// HalfSize asks the engine for a quarter-resolution image.
	HalfSize bool

	// NewDecoder overrides the raw engine, nil uses DefaultDecoder.
	NewDecoder DecoderFactory
	// Logger receives per-stage debug records, nil discards them.
	Logger logrus.FieldLogger
}

// Config is the fixed decode policy derived from Options.
type Config struct {
	ColorSpace   ColorSpace
	OutputBPS    int
	Quality      int
	Highlight    int
	NoAutoBright bool
	Threshold    float32
	Gamma        [2]float64
	HalfSize     bool
}

// NativeImage is the engine's in-memory output before normalization.
// Data is owned by the decoder and is only valid until Release.
type NativeImage struct {
	Width    int
	Height   int
	Channels int
	Bits     int
	// Stride is the byte length of a row, 0 means Width*Channels*Bits/8.
	Stride int
	Data   []byte
}

// Image is a linear RGB image with float32 samples in [0,1].
// Pix holds Width*Height*3 values, row-major, pixel-interleaved R,G,B.
type Image struct {
	Width  int
	Height int
	Pix    []float32
}

// At returns the RGB triplet at x, y clamped to image bounds.
func (m *Image) At(x, y int) (r, g, b float32) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= m.Width {
		x = m.Width - 1
	}
	if y >= m.Height {
		y = m.Height - 1
	}
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}
