package codec

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Zstd compresses payloads with zstd at the default level. This is the
// best trade-off for float64 curve data (2-3x smaller, fast decode) and is
// the library default.
type Zstd struct{}

var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
)

func zstdInit() {
	// EncodeAll/DecodeAll on shared instances are safe for concurrent use.
	zstdEnc, _ = zstd.NewWriter(nil)
	zstdDec, _ = zstd.NewReader(nil)
}

// Compress encodes data as a zstd frame.
func (Zstd) Compress(data []byte) ([]byte, error) {
	zstdOnce.Do(zstdInit)
	return zstdEnc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decodes a zstd frame.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	zstdOnce.Do(zstdInit)
	return zstdDec.DecodeAll(data, nil)
}

// Name returns the unique name of the codec ("zstd").
func (Zstd) Name() string { return "zstd" }
