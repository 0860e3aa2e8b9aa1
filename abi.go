// Package abi exposes the abi native library to Go.
//
// The shared library is located under ./out (see Config), loaded once per
// process, and its exported C functions are wrapped with typed Go calls:
//
//	if err := abi.Init(abi.DefaultConfig()); err != nil {
//		log.Fatal(err) // build the native library with CMake first
//	}
//	defer abi.Shutdown()
//	fmt.Println(abi.Hello("World"))
//
// Loading is lazy: nothing is opened at import time. The package-level
// wrappers load the library on first use and panic with the load error if
// it cannot be found. Call Init early, typically at the top of main, to load
// eagerly and handle that error instead.
package abi

import (
	"go.uber.org/zap"

	"github.com/agiangrant/abi/internal/ffi"
)

// Point is the native abi_point_t record.
type Point = ffi.Point

// Library is an explicitly opened instance of the native library.
type Library = ffi.Library

var (
	// ErrLibraryNotFound is matched by load failures (errors.Is).
	ErrLibraryNotFound = ffi.ErrLibraryNotFound
	// ErrSymbolNotFound is matched when the library lacks an export.
	ErrSymbolNotFound = ffi.ErrSymbolNotFound
	// ErrClosed is the panic value of calls on a closed library.
	ErrClosed = ffi.ErrClosed
)

// NotFoundError lists the paths searched by a failed load.
type NotFoundError = ffi.NotFoundError

// Open loads a library instance independent of the process-wide one.
func Open(config Config) (*Library, error) {
	return ffi.Open(config)
}

// Init loads the process-wide library. Only the first call loads.
func Init(config Config) error {
	return ffi.Init(config)
}

// Shutdown unloads the process-wide library; a later call loads it again.
func Shutdown() error {
	return ffi.Shutdown()
}

// MustLoad returns the process-wide library, panicking if it cannot be loaded.
func MustLoad() *Library {
	lib, err := ffi.Default()
	if err != nil {
		panic(err)
	}
	return lib
}

// SetLogger routes loader diagnostics to l.
func SetLogger(l *zap.Logger) {
	ffi.SetLogger(l)
}

// AddI32 returns a + b.
func AddI32(a, b int32) int32 { return MustLoad().AddI32(a, b) }

// Dot2f returns a0*b0 + a1*b1.
func Dot2f(a0, a1, b0, b1 float32) float64 { return MustLoad().Dot2f(a0, a1, b0, b1) }

// IsPositive reports whether v > 0.
func IsPositive(v float64) bool { return MustLoad().IsPositive(v) }

// MakePoint constructs a Point natively.
func MakePoint(x, y int32) Point { return MustLoad().MakePoint(x, y) }

// Manhattan returns the Manhattan distance of p from the origin.
func Manhattan(p Point) int64 { return MustLoad().Manhattan(p) }

// Hello returns the native greeting for name.
func Hello(name string) string { return MustLoad().Hello(name) }

// HelloDefault returns the native greeting for no name.
func HelloDefault() string { return MustLoad().HelloDefault() }
