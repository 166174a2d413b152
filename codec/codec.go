// Package codec centralizes payload compression for the curve store.
//
// The codec name is recorded in the storage file header, so files are
// self-describing: a file written with one codec is opened by selecting the
// same codec by name, regardless of the process default.
package codec

import "fmt"

// Codec compresses and decompresses array payloads.
// Implementations must be safe for concurrent use.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "none":
		return None{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// MustCompress is a helper for internal tests.
func MustCompress(c Codec, data []byte) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Compress(data)
	if err != nil {
		panic(fmt.Errorf("codec %s compress failed: %w", c.Name(), err))
	}
	return b
}

// Default is the codec used for newly created storage files.
//
// Existing files are self-describing and always open with the codec named
// in their header.
var Default Codec = Zstd{}

// None is the identity codec.
type None struct{}

// Compress returns the input unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns the input unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns the unique name of the codec ("none").
func (None) Name() string { return "none" }
