package rawlinear

import (
	"encoding/binary"
	"errors"
	"testing"
)

func norm16(v uint16) float32 {
	return float32(float64(v) / 65535)
}

func ratio(v, maxVal float64) float32 {
	return float32(v / maxVal)
}

func TestPack_layout(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h int
	}{
		{name: "1x1", w: 1, h: 1},
		{name: "3x2", w: 3, h: 2},
		{name: "5x3", w: 5, h: 3},
		{name: "2x7", w: 2, h: 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img, err := Pack(nativeRGB16(tc.w, tc.h, 3, patternSample))
			if err != nil {
				t.Fatalf("pack: %v", err)
			}
			if img.Width != tc.w || img.Height != tc.h {
				t.Fatalf("dimensions %dx%d", img.Width, img.Height)
			}
			if len(img.Pix) != tc.w*tc.h*3 {
				t.Fatalf("got %d samples, want %d", len(img.Pix), tc.w*tc.h*3)
			}
			for y := 0; y < tc.h; y++ {
				for x := 0; x < tc.w; x++ {
					for c := 0; c < 3; c++ {
						got := img.Pix[(y*tc.w+x)*3+c]
						if want := norm16(patternSample(x, y, c)); got != want {
							t.Fatalf("(%d,%d,%d): got %v, want %v", x, y, c, got, want)
						}
					}
				}
			}
		})
	}
}

func TestPack_range(t *testing.T) {
	src := nativeRGB16(2, 1, 3, func(x, _, c int) uint16 {
		if x == 0 {
			return 0
		}
		return 0xffff
	})

	img, err := Pack(src)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}

	want := []float32{0, 0, 0, 1, 1, 1}
	for i, v := range img.Pix {
		if v != want[i] {
			t.Fatalf("sample %d: got %v, want %v", i, v, want[i])
		}
	}
}

func TestPack_allSampleValues(t *testing.T) {
	// 65536 pixels, one per 16-bit value.
	src := nativeRGB16(256, 256, 3, func(x, y, _ int) uint16 { return uint16(y*256 + x) })

	img, err := Pack(src)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}

	for i, v := range img.Pix {
		if v < 0 || v > 1 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
		if want := norm16(uint16(i / 3)); v != want {
			t.Fatalf("sample %d: got %v, want %v", i, v, want)
		}
	}
}

func TestPack_extraChannelsAndStride(t *testing.T) {
	const (
		w, h     = 3, 2
		channels = 4
		stride   = w*channels*2 + 6
	)

	data := make([]byte, stride*h)
	for i := range data {
		data[i] = 0xee // Padding and alpha must never leak into the result.
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < 3; c++ {
				binary.LittleEndian.PutUint16(data[y*stride+(x*channels+c)*2:], patternSample(x, y, c))
			}
		}
	}

	img, err := Pack(&NativeImage{Width: w, Height: h, Channels: channels, Bits: 16, Stride: stride, Data: data})
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if len(img.Pix) != w*h*3 {
		t.Fatalf("got %d samples", len(img.Pix))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := img.At(x, y)
			for c, got := range []float32{r, g, b} {
				if want := norm16(patternSample(x, y, c)); got != want {
					t.Fatalf("(%d,%d,%d): got %v, want %v", x, y, c, got, want)
				}
			}
		}
	}
}

func TestPack_bitDepths(t *testing.T) {
	for _, tc := range []struct {
		bits int
		data []byte
		want []float32
	}{
		{bits: 8, data: []byte{0, 51, 255}, want: []float32{0, ratio(51, 255), 1}},
		{bits: 16, data: []byte{0x00, 0x01, 0xff, 0xff, 0x00, 0x00}, want: []float32{norm16(0x0100), 1, 0}},
		{bits: 24, data: []byte{0xff, 0xff, 0xff, 0, 0, 0, 0, 0, 0x80}, want: []float32{1, 0, ratio(0x800000, 0xffffff)}},
		{bits: 32, data: []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0, 1, 0, 0, 0}, want: []float32{1, 0, ratio(1, 0xffffffff)}},
	} {
		img, err := Pack(&NativeImage{Width: 1, Height: 1, Channels: 3, Bits: tc.bits, Data: tc.data})
		if err != nil {
			t.Fatalf("%d bits: %v", tc.bits, err)
		}
		for i, v := range img.Pix {
			if v != tc.want[i] {
				t.Fatalf("%d bits, sample %d: got %v, want %v", tc.bits, i, v, tc.want[i])
			}
		}
	}
}

func TestPack_unsupportedLayout(t *testing.T) {
	for name, src := range map[string]*NativeImage{
		"nil":          nil,
		"two channels": {Width: 1, Height: 1, Channels: 2, Bits: 16, Data: make([]byte, 4)},
		"12 bits":      {Width: 1, Height: 1, Channels: 3, Bits: 12, Data: make([]byte, 6)},
		"zero width":   {Width: 0, Height: 1, Channels: 3, Bits: 16},
		"short buffer": {Width: 2, Height: 2, Channels: 3, Bits: 16, Data: make([]byte, 23)},
		"short stride": {Width: 2, Height: 1, Channels: 3, Bits: 16, Stride: 6, Data: make([]byte, 12)},
	} {
		if _, err := Pack(src); !errors.Is(err, ErrUnsupportedLayout) {
			t.Fatalf("%s: got %v, want ErrUnsupportedLayout", name, err)
		}
	}
}

func BenchmarkPack(b *testing.B) {
	src := nativeRGB16(1200, 800, 3, patternSample)

	b.ReportAllocs()
	b.SetBytes(int64(len(src.Data)))
	for i := 0; i < b.N; i++ {
		if _, err := Pack(src); err != nil {
			b.Fatal(err)
		}
	}
}
