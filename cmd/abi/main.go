package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/abi/cmd/abi/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "locate":
		err = commands.Locate(args)
	case "add":
		err = commands.Add(args)
	case "dot":
		err = commands.Dot(args)
	case "positive":
		err = commands.Positive(args)
	case "point":
		err = commands.Point(args)
	case "hello":
		err = commands.Hello(args)
	case "check":
		err = commands.Check(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("abi version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`abi - call the abi native library from Go

Usage: abi <command> [options] [args]

Commands:
  locate          List candidate library paths and which of them exist
  add A B         Add two int32 values natively
  dot A0 A1 B0 B1 Dot product of two float32 2D vectors
  positive V      Report whether V > 0
  point X Y       Build a point and print its Manhattan distance
  hello [NAME]    Print the native greeting (no NAME passes NULL)
  check           Exercise every exported function and verify results
  init            Write a default abi.toml
  version         Print version information
  help            Show this help message

Common options:
  -config PATH    Configuration file (default abi.toml)
  -lib PATH       Explicit library file, searched first
  -v              Verbose loader logging

Examples:
  abi locate
  abi add 2 40
  abi hello World
  abi check -v

Configuration:
  The library is searched under ./out as produced by CMake. Override with
  abi.toml, ABI_LIB_PATH or ABI_ROOT.`)
}
