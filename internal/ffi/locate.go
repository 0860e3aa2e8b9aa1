package ffi

import (
	"path/filepath"
)

// LibraryName returns the platform file name of the abi shared library.
func LibraryName(goos string) string {
	switch goos {
	case "windows":
		return "abi.dll"
	case "darwin", "ios":
		return "libabi.dylib"
	default:
		// linux, android, freebsd and the other ELF platforms
		return "libabi.so"
	}
}

// Candidates returns every path the library may live at on goos, in search
// order, without touching the file system.
func Candidates(goos string, config Config) []string {
	lib := config.Library
	name := LibraryName(goos)

	var paths []string
	if lib.Path != "" {
		paths = append(paths, lib.Path)
	}

	for _, root := range lib.Roots {
		out := filepath.Join(root, lib.OutDir)
		if goos == "windows" {
			// Multi-config generators put each build type in its own directory
			for _, cfg := range lib.Configurations {
				paths = append(paths,
					filepath.Join(out, cfg, "bin", name),
					filepath.Join(out, cfg, "lib", name),
				)
			}
			paths = append(paths,
				filepath.Join(out, "bin", name),
				filepath.Join(out, "lib", name),
			)
			continue
		}
		paths = append(paths, filepath.Join(out, "lib", name))
	}

	return dedupe(paths)
}

// Locate returns the candidates that exist on disk, preserving search order.
func Locate(goos string, config Config) []string {
	var found []string
	for _, path := range Candidates(goos, config) {
		if config.exists(path) {
			found = append(found, path)
		}
	}
	return found
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
