//go:build !darwin && !freebsd && !linux && !netbsd && !windows

package ffi

import (
	"errors"
	"fmt"
	"runtime"
)

var errUnsupported = fmt.Errorf("dynamic loading on %s: %w", runtime.GOOS, errors.ErrUnsupported)

func openLibrary(string) (uintptr, error) { return 0, errUnsupported }

func closeLibrary(uintptr) error { return nil }

func getSymbol(uintptr, string) (uintptr, error) { return 0, errUnsupported }
