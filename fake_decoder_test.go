package rawlinear

import (
	"encoding/binary"
	"errors"
	"sync"
)

var errEngine = errors.New("engine failure")

// fakeDecoder is an in-memory Decoder recording its lifecycle calls.
type fakeDecoder struct {
	mu sync.Mutex

	cfg    Config
	failAt Stage
	// images maps opened paths to the image materialized for them.
	images map[string]*NativeImage
	native *NativeImage

	calls    []string
	released int
	closed   int
}

func (d *fakeDecoder) record(name string, stage Stage) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls = append(d.calls, name)
	if stage != "" && d.failAt == stage {
		return errEngine
	}
	return nil
}

func (d *fakeDecoder) Open(path string) error {
	if err := d.record("open", StageOpen); err != nil {
		return err
	}
	if d.images != nil {
		img, ok := d.images[path]
		if !ok {
			return errors.New("no such file")
		}
		d.native = img
	}
	return nil
}

func (d *fakeDecoder) Unpack() error  { return d.record("unpack", StageUnpack) }
func (d *fakeDecoder) Process() error { return d.record("process", StageProcess) }

func (d *fakeDecoder) MemImage() (*NativeImage, error) {
	if err := d.record("materialize", StageMaterialize); err != nil {
		return nil, err
	}
	return d.native, nil
}

func (d *fakeDecoder) Release(*NativeImage) {
	_ = d.record("release", "")
	d.mu.Lock()
	d.released++
	d.mu.Unlock()
}

func (d *fakeDecoder) Close() error {
	_ = d.record("close", "")
	d.mu.Lock()
	d.closed++
	d.mu.Unlock()
	return nil
}

// fakeFactory returns a factory handing out dec and remembering the config it got.
func fakeFactory(dec *fakeDecoder) DecoderFactory {
	return func(cfg Config) (Decoder, error) {
		dec.cfg = cfg
		return dec, nil
	}
}

// nativeRGB16 builds a 16-bit little-endian native image with tightly packed rows.
func nativeRGB16(w, h, channels int, sample func(x, y, c int) uint16) *NativeImage {
	data := make([]byte, w*h*channels*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < channels; c++ {
				off := ((y*w+x)*channels + c) * 2
				binary.LittleEndian.PutUint16(data[off:], sample(x, y, c))
			}
		}
	}
	return &NativeImage{Width: w, Height: h, Channels: channels, Bits: 16, Data: data}
}

// patternSample gives a distinct value per position and channel.
func patternSample(x, y, c int) uint16 {
	return uint16((y*1000 + x*10 + c) * 7)
}
