package storage

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrBigEndian is returned when running on big-endian systems.
	ErrBigEndian = errors.New("big-endian systems are not supported")

	// ErrUnalignedAccess is returned when attempting unaligned memory access.
	ErrUnalignedAccess = errors.New("unaligned memory access detected")
)

// init validates that raw float64 slice I/O is safe on this platform.
func init() {
	if !isLittleEndian() {
		panic(fmt.Sprintf("starkgo/storage: %v", ErrBigEndian))
	}
}

// isLittleEndian checks if the system is little-endian.
func isLittleEndian() bool {
	var test uint16 = 0x0001
	firstByte := *(*byte)(unsafe.Pointer(&test))
	return firstByte == 1
}

// validateFloat64SliceAlignment checks if a float64 slice is properly aligned.
func validateFloat64SliceAlignment(vals []float64) error {
	if len(vals) == 0 {
		return nil
	}

	ptr := uintptr(unsafe.Pointer(&vals[0]))
	if ptr%8 != 0 {
		return fmt.Errorf("%w: float64 slice at address 0x%x", ErrUnalignedAccess, ptr)
	}

	return nil
}
