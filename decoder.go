package rawlinear

// Decoder is a single-use raw engine instance driven through one decode lifecycle.
//
// Methods are called in order Open, Unpack, Process, MemImage, Release. A decoder that
// also implements io.Closer is closed after Release.
type Decoder interface {
	Open(path string) error
	Unpack() error
	Process() error
	// MemImage materializes the processed image in memory.
	MemImage() (*NativeImage, error)
	// Release frees memory of an image returned by MemImage.
	Release(img *NativeImage)
}

// DecoderFactory creates a fresh decoder configured with cfg.
type DecoderFactory func(cfg Config) (Decoder, error)
