package ffi

import (
	"encoding/binary"
	"unsafe"
)

// Point matches abi_point_t: two int32 fields, x first, no padding.
type Point struct {
	X int32
	Y int32
}

// Compile-time layout checks: 8 bytes total, Y at offset 4.
var (
	_ [unsafe.Sizeof(Point{}) - 8]struct{}
	_ [8 - unsafe.Sizeof(Point{})]struct{}
	_ [unsafe.Offsetof(Point{}.Y) - 4]struct{}
	_ [4 - unsafe.Offsetof(Point{}.Y)]struct{}
)

// An 8-byte aggregate of two int32 travels in one general purpose register
// on SysV amd64, AAPCS64 and Win64, both as argument and as return value.
// packPoint yields the integer whose in-memory bytes are those of p.

func packPoint(p Point) uint64 {
	var b [8]byte
	binary.NativeEndian.PutUint32(b[0:4], uint32(p.X))
	binary.NativeEndian.PutUint32(b[4:8], uint32(p.Y))
	return binary.NativeEndian.Uint64(b[:])
}

func unpackPoint(v uint64) Point {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], v)
	return Point{
		X: int32(binary.NativeEndian.Uint32(b[0:4])),
		Y: int32(binary.NativeEndian.Uint32(b[4:8])),
	}
}
