package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/abi"
)

// Init implements the 'abi init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", abiConfigFile, "Configuration file to write")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	if _, err := os.Stat(*path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", *path)
	}

	config := abi.DefaultConfig()
	// Executable directories are machine specific; keep the file portable
	config.Library.Roots = []string{"."}

	if err := abi.SaveConfigFile(*path, config); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", *path)
	return nil
}
