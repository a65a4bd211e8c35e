package rawlinear

import (
	"bytes"
	"errors"
	"io"
)

// Format identifies a raw container family by its leading bytes.
type Format string

const (
	FormatUnknown Format = ""
	FormatTIFF    Format = "tiff" // DNG, NEF, ARW, PEF and other TIFF based raws.
	FormatCR2     Format = "cr2"
	FormatCR3     Format = "cr3"
	FormatRAF     Format = "raf"
	FormatORF     Format = "orf"
	FormatRW2     Format = "rw2"
	FormatX3F     Format = "x3f"
	FormatMRW     Format = "mrw"
)

const sniffLen = 16

var (
	tiffLE = []byte("II*\x00")
	tiffBE = []byte("MM\x00*")
)

// Sniff reads the head of r and reports the raw container family.
// It does not validate the file, the raw engine decides whether it can decode it.
func Sniff(r io.Reader) (Format, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		if errors.Is(err, io.EOF) {
			return FormatUnknown, nil
		}
		return FormatUnknown, err
	}
	return sniffBytes(head[:n]), nil
}

func sniffBytes(head []byte) Format {
	switch {
	case bytes.HasPrefix(head, []byte("FUJIFILMCCD-RAW")):
		return FormatRAF
	case bytes.HasPrefix(head, []byte("FOVb")):
		return FormatX3F
	case bytes.HasPrefix(head, []byte("\x00MRM")):
		return FormatMRW
	case len(head) >= 12 && bytes.Equal(head[4:12], []byte("ftypcrx ")):
		return FormatCR3
	case bytes.HasPrefix(head, []byte("IIRO")), bytes.HasPrefix(head, []byte("IIRS")),
		bytes.HasPrefix(head, []byte("MMOR")):
		return FormatORF
	case bytes.HasPrefix(head, []byte("IIU\x00")):
		return FormatRW2
	case bytes.HasPrefix(head, tiffLE), bytes.HasPrefix(head, tiffBE):
		if len(head) >= 10 && head[8] == 'C' && head[9] == 'R' {
			return FormatCR2
		}
		return FormatTIFF
	}
	return FormatUnknown
}
