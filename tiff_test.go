package rawlinear

import (
	"bytes"
	"math"
	"testing"
)

func TestEncodeTIFF_roundTrip(t *testing.T) {
	src := gradient(17, 9)
	src.Pix[0] = 1.5 // Clipped.

	var buf bytes.Buffer
	if err := EncodeTIFF(&buf, src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodeTIFF(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Width != src.Width || got.Height != src.Height {
		t.Fatalf("got %dx%d", got.Width, got.Height)
	}
	if got.Pix[0] != 1 {
		t.Fatalf("clipped sample: got %v", got.Pix[0])
	}
	for i := 1; i < len(src.Pix); i++ {
		if d := math.Abs(float64(got.Pix[i] - src.Pix[i])); d > 0.5/65535+1e-7 {
			t.Fatalf("sample %d: got %v, want %v", i, got.Pix[i], src.Pix[i])
		}
	}
}
