package commands

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/agiangrant/abi"
)

// options are the flags shared by every command that loads the library
type options struct {
	configPath string
	libPath    string
	verbose    bool
}

func newFlagSet(name string) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", abiConfigFile, "Configuration file")
	fs.StringVar(&opts.libPath, "lib", "", "Explicit library file, searched first")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose loader logging")
	return fs, opts
}

const abiConfigFile = "abi.toml"

// loadConfig applies file, environment and flags, in increasing precedence
func (o *options) loadConfig() (abi.Config, error) {
	config, err := abi.LoadConfigFile(o.configPath)
	if err != nil {
		return config, err
	}
	config.ApplyEnv()
	if o.libPath != "" {
		config.Library.Path = o.libPath
	}
	return config, nil
}

func (o *options) setupLogging() error {
	if !o.verbose {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	abi.SetLogger(logger)
	return nil
}

// open loads a fresh library instance; the caller closes it
func (o *options) open() (*abi.Library, error) {
	if err := o.setupLogging(); err != nil {
		return nil, err
	}
	config, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return abi.Open(config)
}
