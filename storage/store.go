package storage

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/starklab/starkgo/codec"
)

var (
	// ErrNotFound is returned when no array is stored at the requested path.
	ErrNotFound = errors.New("entry not found")

	// ErrReadOnly is returned for mutating operations on a read-only store.
	ErrReadOnly = errors.New("store is read-only")

	// ErrClosed is returned for operations on a closed store.
	ErrClosed = errors.New("store is closed")
)

// Mode selects how a store is opened.
type Mode int

const (
	// ReadOnly opens an existing file and rejects all mutations.
	ReadOnly Mode = iota
	// ReadWrite opens an existing file or creates a new one.
	ReadWrite
)

// IsomerMass is one row of the per-file isomer-mass table.
type IsomerMass struct {
	Index int
	Name  string
	Mass  float64
}

// Option configures Open.
type Option func(*Store)

// WithCodec sets the payload codec for newly created files. Existing files
// always open with the codec named in their header.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// Store is a single-file hierarchical float64 array store.
//
// The whole tree lives in memory; Flush rewrites the backing file
// atomically (temp file + rename). One writer per file: the store performs
// no locking against other processes.
type Store struct {
	path   string
	mode   Mode
	codec  codec.Codec
	root   *node
	masses []IsomerMass
	dirty  bool
	closed bool
}

// Open opens or creates the storage file at path.
//
// In ReadOnly mode the file must exist. In ReadWrite mode a missing file
// yields an empty store that materializes on the first Flush.
func Open(path string, mode Mode, opts ...Option) (*Store, error) {
	s := &Store{
		path:  path,
		mode:  mode,
		codec: codec.Default,
		root:  newGroup(),
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && mode == ReadWrite {
			return s, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := s.decode(bufio.NewReaderSize(f, 256*1024)); err != nil {
		return nil, fmt.Errorf("storage: cannot load %s: %w", path, err)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// GetArray returns a copy of the array stored at path, or ErrNotFound.
func (s *Store) GetArray(path string) ([]float64, error) {
	if s.closed {
		return nil, ErrClosed
	}
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	n := s.root.lookup(segments)
	if n == nil || !n.isLeaf() {
		return nil, ErrNotFound
	}
	out := make([]float64, len(n.array))
	copy(out, n.array)
	return out, nil
}

// SetArray stores a copy of vals at path, creating intermediate groups.
func (s *Store) SetArray(path string, vals []float64) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == ReadOnly {
		return ErrReadOnly
	}
	segments, err := splitPath(path)
	if err != nil {
		return err
	}
	parent, err := s.root.ensureGroup(segments[:len(segments)-1])
	if err != nil {
		return err
	}
	name := segments[len(segments)-1]
	if existing, ok := parent.children[name]; ok && !existing.isLeaf() {
		return fmt.Errorf("path %q is a group, not an array", path)
	}
	stored := make([]float64, len(vals))
	copy(stored, vals)
	parent.children[name] = &node{array: stored}
	s.dirty = true
	return nil
}

// Has reports whether an array is stored at path.
func (s *Store) Has(path string) bool {
	segments, err := splitPath(path)
	if err != nil {
		return false
	}
	n := s.root.lookup(segments)
	return n != nil && n.isLeaf()
}

// Children lists the child segment names under the given group path,
// separated into groups (containers) and leaves (arrays), each sorted.
// The root is addressed by "" or "/".
func (s *Store) Children(path string) (groups, leaves []string, err error) {
	if s.closed {
		return nil, nil, ErrClosed
	}
	n := s.root
	if strings.Trim(path, "/") != "" {
		segments, err := splitPath(path)
		if err != nil {
			return nil, nil, err
		}
		if n = s.root.lookup(segments); n == nil {
			return nil, nil, ErrNotFound
		}
		if n.isLeaf() {
			return nil, nil, fmt.Errorf("path %q is an array, not a group", path)
		}
	}
	groups, leaves = n.childNames()
	return groups, leaves, nil
}

// Walk visits every stored array depth first with its full path.
func (s *Store) Walk(fn func(path string, vals []float64)) error {
	if s.closed {
		return ErrClosed
	}
	s.root.walk("", fn)
	return nil
}

// UpsertIsomerMass updates the mass of an existing row with the same
// isomer index, or appends a new row.
func (s *Store) UpsertIsomerMass(index int, name string, mass float64) error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == ReadOnly {
		return ErrReadOnly
	}
	for i := range s.masses {
		if s.masses[i].Index == index {
			s.masses[i].Mass = mass
			s.dirty = true
			return nil
		}
	}
	s.masses = append(s.masses, IsomerMass{Index: index, Name: name, Mass: mass})
	s.dirty = true
	return nil
}

// IsomerMasses returns a copy of the isomer-mass table rows.
func (s *Store) IsomerMasses() []IsomerMass {
	out := make([]IsomerMass, len(s.masses))
	copy(out, s.masses)
	return out
}

// Flush rewrites the backing file if there are pending writes.
//
// The file is written to a temp file in the same directory and renamed
// over the target so a crash never leaves a half-written store.
func (s *Store) Flush() error {
	if s.closed {
		return ErrClosed
	}
	if s.mode == ReadOnly || !s.dirty {
		return nil
	}
	if err := saveToFile(s.path, s.encode); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Close flushes pending writes and releases the store. Further operations
// return ErrClosed. Close is idempotent.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	err := s.Flush()
	s.closed = true
	return err
}

func (s *Store) encode(w io.Writer) error {
	var body bytes.Buffer
	bw := newBinaryWriter(&body)

	for _, row := range s.masses {
		if err := bw.writeUint16(uint16(row.Index)); err != nil {
			return err
		}
		if err := bw.writeFloat64(row.Mass); err != nil {
			return err
		}
		if err := bw.writeString(row.Name); err != nil {
			return err
		}
	}

	entries := 0
	var walkErr error
	s.root.walk("", func(path string, vals []float64) {
		if walkErr != nil {
			return
		}
		raw, err := float64SliceBytes(vals)
		if err != nil {
			walkErr = err
			return
		}
		payload, err := s.codec.Compress(raw)
		if err != nil {
			walkErr = err
			return
		}
		if err := bw.writeString(path); err != nil {
			walkErr = err
			return
		}
		if err := bw.writeBytes(payload); err != nil {
			walkErr = err
			return
		}
		entries++
	})
	if walkErr != nil {
		return walkErr
	}

	header := FileHeader{
		Magic:      MagicNumber,
		Version:    Version,
		EntryCount: uint32(entries),
		MassCount:  uint32(len(s.masses)),
		Checksum:   crc32.ChecksumIEEE(body.Bytes()),
	}
	header.setCodecName(s.codec.Name())

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return err
}

func (s *Store) decode(r io.Reader) error {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return err
	}
	if header.Magic != MagicNumber {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	c, ok := codec.ByName(header.codecName())
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, header.codecName())
	}
	s.codec = c

	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if sum := crc32.ChecksumIEEE(body); sum != header.Checksum {
		return fmt.Errorf("%w: header 0x%08x, body 0x%08x", ErrChecksum, header.Checksum, sum)
	}

	br := newBinaryReader(bytes.NewReader(body))
	s.masses = make([]IsomerMass, 0, header.MassCount)
	for i := uint32(0); i < header.MassCount; i++ {
		idx, err := br.readUint16()
		if err != nil {
			return err
		}
		mass, err := br.readFloat64()
		if err != nil {
			return err
		}
		name, err := br.readString()
		if err != nil {
			return err
		}
		s.masses = append(s.masses, IsomerMass{Index: int(idx), Name: name, Mass: mass})
	}

	s.root = newGroup()
	for i := uint32(0); i < header.EntryCount; i++ {
		path, err := br.readString()
		if err != nil {
			return err
		}
		payload, err := br.readBytes()
		if err != nil {
			return err
		}
		raw, err := s.codec.Decompress(payload)
		if err != nil {
			return fmt.Errorf("entry %q: %w", path, err)
		}
		vals, err := bytesToFloat64Slice(raw)
		if err != nil {
			return fmt.Errorf("entry %q: %w", path, err)
		}
		segments, err := splitPath(path)
		if err != nil {
			return err
		}
		parent, err := s.root.ensureGroup(segments[:len(segments)-1])
		if err != nil {
			return err
		}
		parent.children[segments[len(segments)-1]] = &node{array: vals}
	}
	return nil
}

// saveToFile writes the store atomically: temp file in the target
// directory, fsync, rename, then a best-effort directory fsync.
func saveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	// Success: prevent deferred cleanup from removing the final file.
	tmpName = ""
	return nil
}
