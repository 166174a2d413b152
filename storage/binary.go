// Package storage persists Stark curves in a single-file hierarchical
// array store: named float64 arrays under a slash-delimited path namespace
// plus one fixed-schema isomer-mass table per file.
//
// The on-disk format is a fixed binary header followed by a checksummed
// body. Array payloads are compressed with a codec recorded by name in the
// header, so files are self-describing.
package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unsafe"
)

// binaryWriter writes body sections in little-endian order.
type binaryWriter struct {
	w         io.Writer
	byteOrder binary.ByteOrder
}

func newBinaryWriter(w io.Writer) *binaryWriter {
	return &binaryWriter{w: w, byteOrder: binary.LittleEndian}
}

func (bw *binaryWriter) writeUint16(v uint16) error {
	return binary.Write(bw.w, bw.byteOrder, v)
}

func (bw *binaryWriter) writeUint32(v uint32) error {
	return binary.Write(bw.w, bw.byteOrder, v)
}

func (bw *binaryWriter) writeFloat64(v float64) error {
	return binary.Write(bw.w, bw.byteOrder, math.Float64bits(v))
}

// writeString writes a uint16 length prefix followed by the raw bytes.
func (bw *binaryWriter) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string too long: %d bytes", len(s))
	}
	if err := bw.writeUint16(uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(bw.w, s)
	return err
}

// writeBytes writes a uint32 length prefix followed by the raw bytes.
func (bw *binaryWriter) writeBytes(p []byte) error {
	if err := bw.writeUint32(uint32(len(p))); err != nil {
		return err
	}
	_, err := bw.w.Write(p)
	return err
}

// binaryReader reads body sections in little-endian order.
type binaryReader struct {
	r         io.Reader
	byteOrder binary.ByteOrder
}

func newBinaryReader(r io.Reader) *binaryReader {
	return &binaryReader{r: r, byteOrder: binary.LittleEndian}
}

func (br *binaryReader) readUint16() (uint16, error) {
	var v uint16
	err := binary.Read(br.r, br.byteOrder, &v)
	return v, err
}

func (br *binaryReader) readUint32() (uint32, error) {
	var v uint32
	err := binary.Read(br.r, br.byteOrder, &v)
	return v, err
}

func (br *binaryReader) readFloat64() (float64, error) {
	var bits uint64
	if err := binary.Read(br.r, br.byteOrder, &bits); err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

func (br *binaryReader) readString() (string, error) {
	n, err := br.readUint16()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(br.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (br *binaryReader) readBytes() ([]byte, error) {
	n, err := br.readUint32()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(br.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// float64SliceBytes views a float64 slice as raw little-endian bytes
// without copying. Safety: validates alignment before the unsafe
// conversion; the platform is checked for little-endianness at init.
func float64SliceBytes(vals []float64) ([]byte, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	if err := validateFloat64SliceAlignment(vals); err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*8), nil
}

// bytesToFloat64Slice converts raw little-endian bytes into a fresh
// float64 slice. The destination is allocated as []float64 so alignment is
// guaranteed; the source bytes are copied, never aliased.
func bytesToFloat64Slice(p []byte) ([]float64, error) {
	if len(p)%8 != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of 8", len(p))
	}
	if len(p) == 0 {
		return []float64{}, nil
	}
	vals := make([]float64, len(p)/8)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(p))
	copy(dst, p)
	return vals, nil
}
