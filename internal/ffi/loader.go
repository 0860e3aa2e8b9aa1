package ffi

import (
	"go.uber.org/zap"
)

// Opener opens a shared library file and returns its handle.
type Opener func(path string) (uintptr, error)

// Load opens the first of paths that loads and returns its handle and path.
// It never retries; when nothing opens the error is a *NotFoundError.
func Load(paths []string, open Opener) (uintptr, string, error) {
	if open == nil {
		open = openLibrary
	}
	log := Logger()

	notFound := &NotFoundError{
		Searched: append([]string(nil), paths...),
		Attempts: make(map[string]error, len(paths)),
	}
	for _, path := range paths {
		log.Debug("ffi: attempting to load library", zap.String("path", path))
		handle, err := open(path)
		if err == nil && handle != 0 {
			return handle, path, nil
		}
		if err == nil {
			err = errNullHandle
		}
		log.Debug("ffi: library failed to load", zap.String("path", path), zap.Error(err))
		notFound.Attempts[path] = err
	}
	return 0, "", notFound
}
