package rawlinear

import (
	"encoding/binary"
	"fmt"
)

// Pack converts a native engine image into a packed RGB float32 image.
//
// Samples are unsigned little-endian integers of Bits/8 bytes. Only the first three
// channels of each pixel are used and each is divided by 2^Bits-1. Row padding in the
// source (Stride) is skipped, the result has no gaps.
func Pack(src *NativeImage) (*Image, error) {
	if err := checkLayout(src); err != nil {
		return nil, err
	}

	bps := src.Bits / 8
	pixelSize := src.Channels * bps
	stride := src.Stride
	if stride == 0 {
		stride = src.Width * pixelSize
	}

	dst := &Image{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]float32, src.Width*src.Height*3),
	}

	norm := newNormalizer(src.Bits)

	for row := 0; row < src.Height; row++ {
		srcRow := src.Data[row*stride:]
		dstRow := dst.Pix[row*src.Width*3 : (row+1)*src.Width*3]
		srcOffset := 0
		for col := 0; col < src.Width; col++ {
			px := srcRow[srcOffset:]
			dstRow[col*3] = norm(px)
			dstRow[col*3+1] = norm(px[bps:])
			dstRow[col*3+2] = norm(px[2*bps:])
			srcOffset += pixelSize
		}
	}

	return dst, nil
}

func checkLayout(src *NativeImage) error {
	if src == nil {
		return fmt.Errorf("%w: nil image", ErrUnsupportedLayout)
	}
	if src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrUnsupportedLayout, src.Width, src.Height)
	}
	if src.Channels < 3 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedLayout, src.Channels)
	}
	if src.Bits <= 0 || src.Bits > 32 || src.Bits%8 != 0 {
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedLayout, src.Bits)
	}

	rowBytes := src.Width * src.Channels * (src.Bits / 8)
	stride := src.Stride
	if stride == 0 {
		stride = rowBytes
	}
	if stride < rowBytes {
		return fmt.Errorf("%w: stride %d shorter than row %d", ErrUnsupportedLayout, stride, rowBytes)
	}
	if need := stride*(src.Height-1) + rowBytes; len(src.Data) < need {
		return fmt.Errorf("%w: buffer has %d bytes, need %d", ErrUnsupportedLayout, len(src.Data), need)
	}
	return nil
}

// newNormalizer returns a function reading one sample from the head of b
// and scaling it to [0,1].
func newNormalizer(bits int) func(b []byte) float32 {
	maxVal := float64(uint64(1)<<uint(bits) - 1)

	switch bits {
	case 8:
		lut := normLUT(bits)
		return func(b []byte) float32 { return lut[b[0]] }
	case 16:
		lut := normLUT(bits)
		return func(b []byte) float32 { return lut[binary.LittleEndian.Uint16(b)] }
	case 24:
		return func(b []byte) float32 {
			v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
			return float32(float64(v) / maxVal)
		}
	default:
		return func(b []byte) float32 {
			return float32(float64(binary.LittleEndian.Uint32(b)) / maxVal)
		}
	}
}

// normLUT precomputes v/(2^bits-1) for every sample value of a depth up to 16 bits.
func normLUT(bits int) []float32 {
	n := 1 << uint(bits)
	maxVal := float64(n - 1)
	lut := make([]float32, n)
	for v := range lut {
		lut[v] = float32(float64(v) / maxVal)
	}
	return lut
}
