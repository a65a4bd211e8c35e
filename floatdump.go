package rawlinear

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
)

// Float dumps are zstd streams of a 12-byte header ("RLF1", width, height as uint32 LE)
// followed by Width*Height*3 float32 LE samples, the exact Image.Pix layout.

// EncodeFloatDump writes img as a zstd compressed float dump.
func EncodeFloatDump(w io.Writer, img *Image) error {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*3 {
		return errors.New("invalid image")
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(enc)

	hdr := []byte(floatDumpMagic)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(img.Width))
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(img.Height))
	if _, err := bw.Write(hdr); err != nil {
		enc.Close()
		return err
	}

	var b [4]byte
	for _, v := range img.Pix {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		if _, err := bw.Write(b[:]); err != nil {
			enc.Close()
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}

	return enc.Close()
}

// DecodeFloatDump reads an image written by EncodeFloatDump.
func DecodeFloatDump(r io.Reader) (*Image, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	br := bufio.NewReader(dec)

	magic := make([]byte, len(floatDumpMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if string(magic) != floatDumpMagic {
		return nil, errors.New("not a float dump")
	}

	var size [2]uint32
	if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	w, h := size[0], size[1]
	if w == 0 || h == 0 || uint64(w)*uint64(h) > math.MaxInt32 {
		return nil, fmt.Errorf("invalid float dump dimensions %dx%d", w, h)
	}

	img := &Image{
		Width:  int(w),
		Height: int(h),
		Pix:    make([]float32, int(w)*int(h)*3),
	}

	var b [4]byte
	for i := range img.Pix {
		if _, err := io.ReadFull(br, b[:]); err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
		img.Pix[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[:]))
	}

	return img, nil
}
