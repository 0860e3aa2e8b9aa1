package ffi

import (
	"unsafe"

	"golang.org/x/text/encoding/unicode"
)

// cString returns a NUL-terminated copy of s.
// The native side stops at the first NUL, so an embedded one truncates the name.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// cStringBytes copies the NUL-terminated bytes at ptr into Go memory.
func cStringBytes(ptr uintptr) []byte {
	if ptr == 0 {
		return nil
	}
	p := unsafe.Pointer(ptr)
	var length int
	for *(*byte)(unsafe.Add(p, length)) != 0 {
		length++
	}
	if length == 0 {
		return nil
	}
	out := make([]byte, length)
	copy(out, unsafe.Slice((*byte)(p), length))
	return out
}

// decodeLenient turns raw into a string, replacing each maximal ill-formed
// UTF-8 subsequence with U+FFFD. The x/text UTF-8 decoder replaces rather
// than rejects, so it never returns an error.
func decodeLenient(raw []byte) string {
	out, _ := unicode.UTF8.NewDecoder().Bytes(raw)
	return string(out)
}

// ownedString guards a string buffer the native library allocated and the
// caller must hand back to abi_free exactly once.
type ownedString struct {
	ptr  uintptr
	lib  *Library
	done bool
}

func (l *Library) own(ptr uintptr) *ownedString {
	l.outstanding.Add(1)
	return &ownedString{ptr: ptr, lib: l}
}

// String copies the buffer out and decodes it leniently.
func (o *ownedString) String() string {
	if o.done {
		return ""
	}
	return decodeLenient(cStringBytes(o.ptr))
}

// Release frees the buffer. Later calls do nothing.
func (o *ownedString) Release() {
	if o.done {
		return
	}
	o.done = true
	o.lib.fnFree(o.ptr)
	o.lib.outstanding.Add(-1)
	o.ptr = 0
}
