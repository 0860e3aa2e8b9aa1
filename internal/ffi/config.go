package ffi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ConfigFileName is the project configuration file looked up by LoadConfig.
	ConfigFileName = "abi.toml"

	// EnvLibPath names an explicit library file, tried before the search table.
	EnvLibPath = "ABI_LIB_PATH"

	// EnvRoot is a list of search roots (os.PathListSeparator separated)
	// replacing the configured ones.
	EnvRoot = "ABI_ROOT"
)

// Config controls where the native library is searched for.
type Config struct {
	Library LibraryConfig

	// Exists reports whether a candidate path is present. Nil means os.Stat.
	Exists func(path string) bool

	// Open opens a candidate. Nil means the platform loader.
	Open Opener
}

// LibraryConfig is the [library] table of abi.toml.
type LibraryConfig struct {
	// Explicit library file; searched before the table below
	Path string `toml:"path"`
	// Directories that contain the build output directory
	Roots []string `toml:"roots"`
	// Build output directory under each root
	OutDir string `toml:"out_dir"`
	// Multi-configuration subdirectories (Windows only)
	Configurations []string `toml:"configurations"`
}

// fileConfig is the on-disk shape of Config.
type fileConfig struct {
	Library LibraryConfig `toml:"library"`
}

// DefaultConfigurations are the CMake multi-config build types, in search order.
var DefaultConfigurations = []string{"Release", "Debug", "RelWithDebInfo", "MinSizeRel"}

// DefaultConfig searches ./out under the working directory and then under
// the directory of the running executable.
func DefaultConfig() Config {
	roots := []string{"."}
	if execPath, err := os.Executable(); err == nil {
		roots = append(roots, filepath.Dir(execPath))
	}
	return Config{
		Library: LibraryConfig{
			Roots:          roots,
			OutDir:         "out",
			Configurations: append([]string(nil), DefaultConfigurations...),
		},
	}
}

// LoadConfigFile reads a TOML config on top of DefaultConfig.
// A missing file is not an error.
func LoadConfigFile(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Relative paths in a config file are relative to the file itself
	base := filepath.Dir(path)
	if lib := file.Library; lib.Path != "" {
		config.Library.Path = resolve(base, lib.Path)
	}
	if roots := file.Library.Roots; len(roots) > 0 {
		config.Library.Roots = make([]string, len(roots))
		for i, root := range roots {
			config.Library.Roots[i] = resolve(base, root)
		}
	}
	if file.Library.OutDir != "" {
		config.Library.OutDir = file.Library.OutDir
	}
	if len(file.Library.Configurations) > 0 {
		config.Library.Configurations = file.Library.Configurations
	}

	config.applyDefaults()
	return config, nil
}

// LoadConfig reads abi.toml from the working directory, if present, and
// applies the ABI_LIB_PATH and ABI_ROOT environment overrides.
func LoadConfig() (Config, error) {
	config, err := LoadConfigFile(ConfigFileName)
	if err != nil {
		return config, err
	}
	config.ApplyEnv()
	return config, nil
}

// ApplyEnv overrides the library path and roots from the environment.
func (c *Config) ApplyEnv() {
	if path := os.Getenv(EnvLibPath); path != "" {
		c.Library.Path = path
	}
	if roots := os.Getenv(EnvRoot); roots != "" {
		c.Library.Roots = filepath.SplitList(roots)
	}
}

// SaveConfigFile writes the [library] table to path.
func SaveConfigFile(path string, config Config) error {
	data, err := toml.Marshal(fileConfig{Library: config.Library})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func (c *Config) applyDefaults() {
	if c.Library.OutDir == "" {
		c.Library.OutDir = "out"
	}
	if len(c.Library.Configurations) == 0 {
		c.Library.Configurations = append([]string(nil), DefaultConfigurations...)
	}
	if len(c.Library.Roots) == 0 {
		c.Library.Roots = []string{"."}
	}
}

func (c Config) exists(path string) bool {
	if c.Exists != nil {
		return c.Exists(path)
	}
	_, err := os.Stat(path)
	return err == nil
}
