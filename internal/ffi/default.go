package ffi

import (
	"sync"
)

// Process-wide library, loaded at most once until Shutdown.
var (
	defaultMu   sync.Mutex
	defaultLib  *Library
	defaultErr  error
	defaultDone bool
)

// Init loads the process-wide library with config. Only the first call
// since start-up (or since the last Shutdown) loads; later calls return
// its result unchanged.
func Init(config Config) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return initLocked(func() (Config, error) { return config, nil })
}

// Default returns the process-wide library, loading it from LoadConfig on
// first use.
func Default() (*Library, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if err := initLocked(LoadConfig); err != nil {
		return nil, err
	}
	return defaultLib, nil
}

func initLocked(load func() (Config, error)) error {
	if defaultDone {
		return defaultErr
	}
	defaultDone = true

	config, err := load()
	if err != nil {
		defaultErr = err
		return err
	}
	defaultLib, defaultErr = Open(config)
	return defaultErr
}

// Shutdown closes the process-wide library and forgets any load failure,
// so the next Init or Default loads again.
func Shutdown() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	lib := defaultLib
	defaultLib, defaultErr, defaultDone = nil, nil, false
	if lib == nil {
		return nil
	}
	return lib.Close()
}
