package rawlinear

import (
	"image"
	"image/color"
	"math"
)

// RGBA64 returns a 16-bit opaque copy of the image with linear samples clipped to [0,1].
func (m *Image) RGBA64() *image.RGBA64 {
	dst := image.NewRGBA64(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := (y*m.Width + x) * 3
			dst.SetRGBA64(x, y, color.RGBA64{
				R: quantize16(m.Pix[i]),
				G: quantize16(m.Pix[i+1]),
				B: quantize16(m.Pix[i+2]),
				A: 0xffff,
			})
		}
	}
	return dst
}

// Display returns an 8-bit sRGB rendering of an image decoded in cs.
func (m *Image) Display(cs ColorSpace) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := (y*m.Width + x) * 3
			v := toLinearSRGB(rgb{r: m.Pix[i], g: m.Pix[i+1], b: m.Pix[i+2]}, cs)
			dst.SetRGBA(x, y, color.RGBA{
				R: quantize8(srgbOetf(clamp01(v.r))),
				G: quantize8(srgbOetf(clamp01(v.g))),
				B: quantize8(srgbOetf(clamp01(v.b))),
				A: 0xff,
			})
		}
	}
	return dst
}

func quantize16(v float32) uint16 {
	return uint16(math.Round(float64(clamp01(v)) * 65535))
}

func quantize8(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 255))
}
