//go:build libraw

package rawlinear

// #cgo LDFLAGS: -lraw
// #include <stdlib.h>
// #include <libraw/libraw.h>
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

const engineAvailable = true

// DefaultDecoder creates a LibRaw decoder configured with cfg.
func DefaultDecoder(cfg Config) (Decoder, error) {
	h := C.libraw_init(0)
	if h == nil {
		return nil, errors.New("libraw_init failed")
	}

	p := &h.params
	p.output_color = C.int(cfg.ColorSpace)
	p.output_bps = C.int(cfg.OutputBPS)
	p.user_qual = C.int(cfg.Quality)
	p.highlight = C.int(cfg.Highlight)
	p.threshold = C.float(cfg.Threshold)
	p.gamm[0] = C.double(cfg.Gamma[0])
	p.gamm[1] = C.double(cfg.Gamma[1])

	if cfg.NoAutoBright {
		p.no_auto_bright = 1
	}
	if cfg.HalfSize {
		p.half_size = 1
	}

	return &libRaw{h: h}, nil
}

type libRaw struct {
	h   *C.libraw_data_t
	mem *C.libraw_processed_image_t
}

func librawError(rc C.int) error {
	if rc == C.LIBRAW_SUCCESS {
		return nil
	}
	return fmt.Errorf("libraw: %s", C.GoString(C.libraw_strerror(rc)))
}

func (l *libRaw) Open(path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	return librawError(C.libraw_open_file(l.h, cpath))
}

func (l *libRaw) Unpack() error {
	return librawError(C.libraw_unpack(l.h))
}

func (l *libRaw) Process() error {
	return librawError(C.libraw_dcraw_process(l.h))
}

func (l *libRaw) MemImage() (*NativeImage, error) {
	var rc C.int

	mem := C.libraw_dcraw_make_mem_image(l.h, &rc)
	if err := librawError(rc); err != nil {
		if mem != nil {
			C.libraw_dcraw_clear_mem(mem)
		}
		return nil, err
	}
	if mem == nil {
		return nil, errors.New("libraw: no memory image")
	}

	l.mem = mem

	// Data aliases engine memory, valid until Release.
	data := unsafe.Slice((*byte)(unsafe.Pointer(&mem.data[0])), int(mem.data_size))

	return &NativeImage{
		Width:    int(mem.width),
		Height:   int(mem.height),
		Channels: int(mem.colors),
		Bits:     int(mem.bits),
		Data:     data,
	}, nil
}

func (l *libRaw) Release(img *NativeImage) {
	if l.mem == nil {
		return
	}
	C.libraw_dcraw_clear_mem(l.mem)
	l.mem = nil
	img.Data = nil
}

// Close frees the LibRaw handle.
func (l *libRaw) Close() error {
	if l.h != nil {
		C.libraw_close(l.h)
		l.h = nil
	}
	return nil
}
