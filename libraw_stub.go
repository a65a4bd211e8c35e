//go:build !libraw

package rawlinear

const engineAvailable = false

// DefaultDecoder fails with ErrNoEngine, the package was built without the libraw tag.
func DefaultDecoder(Config) (Decoder, error) {
	return nil, ErrNoEngine
}
