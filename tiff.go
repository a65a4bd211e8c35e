package rawlinear

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/image/tiff"
)

// EncodeTIFF writes img as a 16-bit linear RGB TIFF with Deflate compression.
// Samples are quantized to [0,65535] and values outside [0,1] are clipped.
func EncodeTIFF(w io.Writer, img *Image) error {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return errors.New("invalid image")
	}
	return tiff.Encode(w, img.RGBA64(), &tiff.Options{
		Compression: tiff.Deflate,
		Predictor:   true,
	})
}

// DecodeTIFF decodes a TIFF image into a linear Image. It supports
// 8/16-bit integer TIFFs, samples are scaled by 1/65535.
func DecodeTIFF(data []byte) (*Image, error) {
	m, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.New("invalid TIFF dimensions")
	}
	out := &Image{
		Width:  w,
		Height: h,
		Pix:    make([]float32, w*h*3),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b2, _ := m.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			out.Pix[i] = float32(r) / 65535.0
			out.Pix[i+1] = float32(g) / 65535.0
			out.Pix[i+2] = float32(b2) / 65535.0
		}
	}
	return out, nil
}
