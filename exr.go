package rawlinear

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mrjoshuak/go-openexr/exr"
)

// EXROptions controls EncodeEXR.
type EXROptions struct {
	// Uncompressed disables ZIP compression of scanline blocks.
	Uncompressed bool
}

var exrChannels = [3]string{"R", "G", "B"}

// EncodeEXR writes img as a single-part scanline OpenEXR file with 32-bit float R, G, B channels.
func EncodeEXR(w io.Writer, img *Image, opt *EXROptions) error {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) < img.Width*img.Height*3 {
		return errors.New("invalid image")
	}

	h := exr.NewScanlineHeader(img.Width, img.Height)
	if opt != nil && opt.Uncompressed {
		h.SetCompression(exr.CompressionNone)
	}

	channels := exr.NewChannelList()
	fb := exr.NewFrameBuffer()
	for k, plane := range splitPlanes(img) {
		channels.Add(exr.NewChannel(exrChannels[k], exr.PixelTypeFloat))
		fb.Set(exrChannels[k], exr.NewSliceFromFloat32(plane, img.Width, img.Height))
	}
	h.SetChannels(channels)

	ws, ok := w.(io.WriteSeeker)
	var buf *seekBuffer
	if !ok {
		// Chunk offsets are patched after the pixels are written.
		buf = &seekBuffer{}
		ws = buf
	}

	sw, err := exr.NewScanlineWriter(ws, h)
	if err != nil {
		return fmt.Errorf("exr header: %w", err)
	}
	sw.SetFrameBuffer(fb)

	if err := sw.WritePixels(0, img.Height-1); err != nil {
		_ = sw.Close()
		return fmt.Errorf("exr pixels: %w", err)
	}
	if err := sw.Close(); err != nil {
		return err
	}

	if buf != nil {
		_, err = w.Write(buf.data)
	}

	return err
}

// DecodeEXR reads the R, G, B channels of an OpenEXR file, missing channels read as zero.
func DecodeEXR(data []byte) (*Image, error) {
	m, err := exr.Decode(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("decode exr: %w", err)
	}

	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("invalid exr dimensions %dx%d", b.Dx(), b.Dy())
	}

	img := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]float32, b.Dx()*b.Dy()*3),
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, bl, _ := m.RGBA(b.Min.X+x, b.Min.Y+y)
			i := (y*img.Width + x) * 3
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = bl
		}
	}

	return img, nil
}

// splitPlanes converts interleaved RGB into one plane per channel.
func splitPlanes(img *Image) [3][]float32 {
	n := img.Width * img.Height

	var planes [3][]float32
	for k := range planes {
		planes[k] = make([]float32, n)
	}
	for i := 0; i < n; i++ {
		planes[0][i] = img.Pix[i*3]
		planes[1][i] = img.Pix[i*3+1]
		planes[2][i] = img.Pix[i*3+2]
	}

	return planes
}

// seekBuffer is an in-memory io.WriteSeeker.
type seekBuffer struct {
	data []byte
	pos  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.pos + len(p); end > len(b.data) {
		if end > cap(b.data) {
			grown := make([]byte, end, 2*end)
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	n := copy(b.data[b.pos:], p)
	b.pos += n

	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.pos) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errors.New("seek: invalid whence")
	}

	if abs < 0 {
		return 0, errors.New("seek: negative position")
	}

	b.pos = int(abs)

	return abs, nil
}
