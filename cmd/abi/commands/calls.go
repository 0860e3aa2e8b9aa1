package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/agiangrant/abi"
)

// Native is the set of library calls the commands make.
// *abi.Library implements it.
type Native interface {
	AddI32(a, b int32) int32
	Dot2f(a0, a1, b0, b1 float32) float64
	IsPositive(v float64) bool
	MakePoint(x, y int32) abi.Point
	Manhattan(p abi.Point) int64
	Hello(name string) string
	HelloDefault() string
}

// withLibrary parses the shared flags, checks the positional argument count
// and runs fn against a freshly loaded library.
func withLibrary(name string, args []string, minArgs, maxArgs int, fn func(lib Native, args []string, w io.Writer) error) error {
	fs, opts := newFlagSet(name)
	fs.Parse(args)

	rest := fs.Args()
	if len(rest) < minArgs || len(rest) > maxArgs {
		if minArgs == maxArgs {
			return fmt.Errorf("%s expects %d argument(s), got %d", name, minArgs, len(rest))
		}
		return fmt.Errorf("%s expects %d to %d arguments, got %d", name, minArgs, maxArgs, len(rest))
	}

	lib, err := opts.open()
	if err != nil {
		return err
	}
	defer lib.Close()

	return fn(lib, rest, os.Stdout)
}

// Add implements the 'abi add A B' command
func Add(args []string) error {
	return withLibrary("add", args, 2, 2, runAdd)
}

func runAdd(lib Native, args []string, w io.Writer) error {
	a, err := parseInt32(args[0])
	if err != nil {
		return err
	}
	b, err := parseInt32(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, lib.AddI32(a, b))
	return nil
}

// Dot implements the 'abi dot A0 A1 B0 B1' command
func Dot(args []string) error {
	return withLibrary("dot", args, 4, 4, runDot)
}

func runDot(lib Native, args []string, w io.Writer) error {
	var v [4]float32
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("invalid float32 %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	fmt.Fprintln(w, strconv.FormatFloat(lib.Dot2f(v[0], v[1], v[2], v[3]), 'g', -1, 64))
	return nil
}

// Positive implements the 'abi positive V' command
func Positive(args []string) error {
	return withLibrary("positive", args, 1, 1, runPositive)
}

func runPositive(lib Native, args []string, w io.Writer) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid float64 %q: %w", args[0], err)
	}
	fmt.Fprintln(w, lib.IsPositive(v))
	return nil
}

// Point implements the 'abi point X Y' command
func Point(args []string) error {
	return withLibrary("point", args, 2, 2, runPoint)
}

func runPoint(lib Native, args []string, w io.Writer) error {
	x, err := parseInt32(args[0])
	if err != nil {
		return err
	}
	y, err := parseInt32(args[1])
	if err != nil {
		return err
	}
	p := lib.MakePoint(x, y)
	fmt.Fprintf(w, "point(x=%d, y=%d) manhattan=%d\n", p.X, p.Y, lib.Manhattan(p))
	return nil
}

// Hello implements the 'abi hello [NAME]' command
func Hello(args []string) error {
	return withLibrary("hello", args, 0, 1, runHello)
}

func runHello(lib Native, args []string, w io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(w, lib.HelloDefault())
		return nil
	}
	fmt.Fprintln(w, lib.Hello(args[0]))
	return nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid int32 %q: %w", s, err)
	}
	return int32(v), nil
}
