package commands

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/agiangrant/abi"
)

// Locate implements the 'abi locate' command
func Locate(args []string) error {
	fs, opts := newFlagSet("locate")
	goos := fs.String("os", runtime.GOOS, "Platform whose search table to print")
	fs.Parse(args)

	if err := opts.setupLogging(); err != nil {
		return err
	}
	config, err := opts.loadConfig()
	if err != nil {
		return err
	}
	return runLocate(*goos, config, os.Stdout)
}

func runLocate(goos string, config abi.Config, w io.Writer) error {
	fmt.Fprintf(w, "Search order for %s:\n", goos)
	found := make(map[string]bool)
	for _, path := range abi.Locate(goos, config) {
		found[path] = true
	}
	for _, path := range abi.Candidates(goos, config) {
		mark := " "
		if found[path] {
			mark = "✓"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, path)
	}
	if len(found) == 0 {
		return abi.ErrLibraryNotFound
	}
	return nil
}
