package rawlinear

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteOptions controls WriteFile.
type WriteOptions struct {
	EXR     EXROptions
	Preview PreviewOptions
}

// WriteFile stores img at path, the format is chosen by extension:
// .exr (float32 OpenEXR), .tif/.tiff (16-bit TIFF), .ppm (8-bit sRGB preview)
// and .f32.zst (float dump).
func WriteFile(path string, img *Image, opts ...func(o *WriteOptions)) (err error) {
	opt := WriteOptions{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	encode, err := encoderFor(path, opt)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		if clErr := f.Close(); clErr != nil && err == nil {
			err = clErr
		}
		if err != nil {
			_ = os.Remove(filepath.Clean(path))
		}
	}()

	bw := bufio.NewWriter(f)
	if err := encode(bw, img); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	return bw.Flush()
}

// ReadFile loads an image written by WriteFile, PPM previews are not supported.
func ReadFile(path string) (*Image, error) {
	switch formatOf(path) {
	case ".exr":
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		return DecodeEXR(data)
	case ".tiff":
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		return DecodeTIFF(data)
	case ".f32.zst":
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return DecodeFloatDump(bufio.NewReader(f))
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

func encoderFor(path string, opt WriteOptions) (func(w io.Writer, img *Image) error, error) {
	switch formatOf(path) {
	case ".exr":
		return func(w io.Writer, img *Image) error { return EncodeEXR(w, img, &opt.EXR) }, nil
	case ".tiff":
		return EncodeTIFF, nil
	case ".ppm":
		return func(w io.Writer, img *Image) error { return EncodePreviewPPM(w, img, opt.Preview) }, nil
	case ".f32.zst":
		return EncodeFloatDump, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
}

func formatOf(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".f32.zst") {
		return ".f32.zst"
	}
	ext := filepath.Ext(lower)
	if ext == ".tif" {
		return ".tiff"
	}
	return ext
}
