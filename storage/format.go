package storage

import "errors"

const (
	// MagicNumber identifies curve storage files (ASCII: "STK1").
	MagicNumber = 0x53544B31
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrChecksum       = errors.New("checksum mismatch")
	ErrUnknownCodec   = errors.New("unknown payload codec")
)

// FileHeader is the fixed-size header at the start of every storage file.
// The checksum covers everything after the header.
type FileHeader struct {
	Magic      uint32
	Version    uint32
	CodecName  [8]byte // NUL-padded stable codec name
	EntryCount uint32  // number of array entries
	MassCount  uint32  // number of isomer-mass rows
	Checksum   uint32  // CRC32 (IEEE) of the body
	Reserved   [8]byte
}

func (h *FileHeader) codecName() string {
	n := 0
	for n < len(h.CodecName) && h.CodecName[n] != 0 {
		n++
	}
	return string(h.CodecName[:n])
}

func (h *FileHeader) setCodecName(name string) {
	h.CodecName = [8]byte{}
	copy(h.CodecName[:], name)
}
