package abi

import "github.com/agiangrant/abi/internal/ffi"

// Config controls where the native library is searched for.
// This is a re-export of ffi.Config for consumer convenience.
type Config = ffi.Config

// LibraryConfig is the [library] table of abi.toml.
type LibraryConfig = ffi.LibraryConfig

// DefaultConfig searches ./out under the working directory and next to the executable.
func DefaultConfig() Config {
	return ffi.DefaultConfig()
}

// LoadConfig reads abi.toml from the working directory and applies the
// ABI_LIB_PATH and ABI_ROOT environment overrides.
func LoadConfig() (Config, error) {
	return ffi.LoadConfig()
}

// Candidates lists where the library is searched for on goos, in order.
func Candidates(goos string, config Config) []string {
	return ffi.Candidates(goos, config)
}

// LoadConfigFile reads a TOML config file on top of DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	return ffi.LoadConfigFile(path)
}

// SaveConfigFile writes config to path as TOML.
func SaveConfigFile(path string, config Config) error {
	return ffi.SaveConfigFile(path, config)
}

// Locate returns the candidates for goos that exist, in search order.
func Locate(goos string, config Config) []string {
	return ffi.Locate(goos, config)
}
