// Package ffi provides Go bindings to the abi native library via purego.
// Using purego instead of cgo keeps the module cross-compilable and lets
// the library be located at run time.
package ffi

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// ============================================================================
// Library
// ============================================================================

// Library is a loaded abi shared library with its symbols bound.
// A Library is not safe for concurrent use with Close.
type Library struct {
	handle uintptr
	path   string
	closed atomic.Bool

	// buffers returned by abi_hello and not yet passed to abi_free
	outstanding atomic.Int64

	fnAddI32     func(a, b int32) int32
	fnDot2f      func(a0, a1, b0, b1 float32) float64
	fnIsPositive func(v float64) bool
	fnMakePoint  func(x, y int32) uint64
	fnManhattan  func(p uint64) int64
	fnHello      func(name *byte) uintptr
	fnFree       func(ptr uintptr)
}

// symbol pairs an exported name with the function field it is bound to.
type symbol struct {
	name string
	fn   any
}

func (l *Library) symbols() []symbol {
	return []symbol{
		{"abi_add_i32", &l.fnAddI32},
		{"abi_dot2f", &l.fnDot2f},
		{"abi_is_positive", &l.fnIsPositive},
		{"abi_make_point", &l.fnMakePoint},
		{"abi_manhattan", &l.fnManhattan},
		{"abi_hello", &l.fnHello},
		{"abi_free", &l.fnFree},
	}
}

// Open locates the library for the running platform, loads the first
// candidate that opens and binds every exported symbol.
func Open(config Config) (*Library, error) {
	log := Logger()
	log.Debug("ffi: platform", zap.String("goos", runtime.GOOS), zap.String("goarch", runtime.GOARCH))

	paths := Locate(runtime.GOOS, config)
	handle, path, err := Load(paths, config.Open)
	if err != nil {
		return nil, err
	}

	lib := &Library{handle: handle, path: path}
	if err := lib.bind(); err != nil {
		_ = closeLibrary(handle)
		return nil, err
	}

	log.Info("ffi: loaded abi library", zap.String("path", path))
	return lib, nil
}

// bind resolves every symbol and registers its Go signature.
func (l *Library) bind() error {
	for _, sym := range l.symbols() {
		addr, err := getSymbol(l.handle, sym.name)
		if err == nil && addr == 0 {
			err = fmt.Errorf("null address")
		}
		if err != nil {
			return &SymbolError{Symbol: sym.name, Path: l.path, Err: err}
		}
		purego.RegisterFunc(sym.fn, addr)
	}
	return nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// Outstanding returns how many greeting buffers have not been freed yet.
func (l *Library) Outstanding() int64 { return l.outstanding.Load() }

// Close unloads the library. Wrappers called afterwards panic with ErrClosed.
func (l *Library) Close() error {
	if l.closed.Swap(true) {
		return nil
	}
	Logger().Debug("ffi: closing abi library", zap.String("path", l.path))
	handle := l.handle
	l.handle = 0
	return closeLibrary(handle)
}

func (l *Library) check() {
	if l.closed.Load() {
		panic(ErrClosed)
	}
}

// ============================================================================
// Typed wrappers
// ============================================================================

// AddI32 returns a + b as computed natively (int32 wrap-around on overflow).
func (l *Library) AddI32(a, b int32) int32 {
	l.check()
	return l.fnAddI32(a, b)
}

// Dot2f returns the dot product a0*b0 + a1*b1, widened to float64.
func (l *Library) Dot2f(a0, a1, b0, b1 float32) float64 {
	l.check()
	return l.fnDot2f(a0, a1, b0, b1)
}

// IsPositive reports whether v > 0.
func (l *Library) IsPositive(v float64) bool {
	l.check()
	return l.fnIsPositive(v)
}

// MakePoint constructs a point natively.
func (l *Library) MakePoint(x, y int32) Point {
	l.check()
	return unpackPoint(l.fnMakePoint(x, y))
}

// Manhattan returns |p.X| + |p.Y|.
func (l *Library) Manhattan(p Point) int64 {
	l.check()
	return l.fnManhattan(packPoint(p))
}

// Hello greets name.
func (l *Library) Hello(name string) string {
	l.check()
	buf := cString(name)
	ptr := l.fnHello(&buf[0])
	runtime.KeepAlive(buf)
	return l.takeString(ptr)
}

// HelloDefault passes NULL and returns the native default greeting.
func (l *Library) HelloDefault() string {
	l.check()
	return l.takeString(l.fnHello(nil))
}

// takeString copies a native string out and frees it, on every exit path.
// A NULL result yields "" and nothing to free.
func (l *Library) takeString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	owned := l.own(ptr)
	defer owned.Release()
	return owned.String()
}
