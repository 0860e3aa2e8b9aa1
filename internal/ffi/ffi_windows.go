//go:build windows

package ffi

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

var (
	winDLLs   = map[uintptr]*windows.DLL{}
	winDLLsMu sync.Mutex
)

// openLibrary loads a dynamic library on Windows
func openLibrary(path string) (uintptr, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return 0, fmt.Errorf("LoadDLL failed: %w", err)
	}
	// Return the actual HMODULE handle, not a pointer to the DLL struct
	handle := uintptr(dll.Handle)
	winDLLsMu.Lock()
	winDLLs[handle] = dll
	winDLLsMu.Unlock()
	return handle, nil
}

// closeLibrary releases a library opened by openLibrary
func closeLibrary(handle uintptr) error {
	winDLLsMu.Lock()
	dll, ok := winDLLs[handle]
	delete(winDLLs, handle)
	winDLLsMu.Unlock()
	if !ok {
		return nil
	}
	if err := dll.Release(); err != nil {
		return fmt.Errorf("FreeLibrary failed: %w", err)
	}
	return nil
}

// getSymbol retrieves a symbol from the loaded library on Windows
func getSymbol(handle uintptr, name string) (uintptr, error) {
	winDLLsMu.Lock()
	dll, ok := winDLLs[handle]
	winDLLsMu.Unlock()
	if !ok {
		return 0, fmt.Errorf("library not loaded")
	}
	proc, err := dll.FindProc(name)
	if err != nil {
		return 0, fmt.Errorf("FindProc(%s) failed: %w", name, err)
	}
	return proc.Addr(), nil
}
