package rawlinear

import (
	"errors"
	"image"
	"io"

	"github.com/lmittmann/ppm"
	"github.com/nfnt/resize"
)

// PreviewOptions controls preview rendering.
type PreviewOptions struct {
	// ColorSpace is the space the image was decoded in, used to convert to sRGB.
	ColorSpace ColorSpace
	// MaxWidth and MaxHeight bound the preview size, zero keeps the full size.
	MaxWidth  uint
	MaxHeight uint
}

// Preview renders img as an 8-bit sRGB image, downscaled with Lanczos3 to fit the bounds
// while keeping the aspect ratio.
func Preview(img *Image, opt PreviewOptions) (image.Image, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, errors.New("invalid image")
	}

	display := img.Display(opt.ColorSpace)
	if opt.MaxWidth == 0 && opt.MaxHeight == 0 {
		return display, nil
	}

	maxW, maxH := opt.MaxWidth, opt.MaxHeight
	if maxW == 0 {
		maxW = uint(img.Width)
	}
	if maxH == 0 {
		maxH = uint(img.Height)
	}

	return resize.Thumbnail(maxW, maxH, display, resize.Lanczos3), nil
}

// EncodePreviewPPM writes a binary PPM preview of img.
func EncodePreviewPPM(w io.Writer, img *Image, opt PreviewOptions) error {
	p, err := Preview(img, opt)
	if err != nil {
		return err
	}
	return ppm.Encode(w, p)
}
