package ffi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLibraryNotFound is returned when no candidate path yields a loadable library.
	ErrLibraryNotFound = errors.New("abi shared library not found in ./out; build it with CMake first")

	// ErrSymbolNotFound is returned when the loaded library lacks an exported symbol.
	ErrSymbolNotFound = errors.New("abi symbol not found")

	// ErrClosed is the panic value of a wrapper called after Close.
	ErrClosed = errors.New("abi library is closed")

	errNullHandle = errors.New("loader returned a null handle")
)

// NotFoundError lists what the loader searched before giving up.
type NotFoundError struct {
	Searched []string
	// Attempts holds the open error of every searched path that failed
	Attempts map[string]error
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(ErrLibraryNotFound.Error())
	if len(e.Searched) == 0 {
		b.WriteString(" (no candidate path exists)")
		return b.String()
	}
	b.WriteString(" (tried: ")
	for i, path := range e.Searched {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(path)
		if err := e.Attempts[path]; err != nil {
			fmt.Fprintf(&b, ": %v", err)
		}
	}
	b.WriteString(")")
	return b.String()
}

func (e *NotFoundError) Unwrap() error { return ErrLibraryNotFound }

// SymbolError reports a symbol that could not be bound.
type SymbolError struct {
	Symbol string
	Path   string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %s in %s: %v", ErrSymbolNotFound, e.Symbol, e.Path, e.Err)
}

func (e *SymbolError) Unwrap() []error { return []error{ErrSymbolNotFound, e.Err} }
