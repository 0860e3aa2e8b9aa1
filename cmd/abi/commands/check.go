package commands

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Check implements the 'abi check' command
func Check(args []string) error {
	return withLibrary("check", args, 0, 0, func(lib Native, _ []string, w io.Writer) error {
		return runCheck(lib, w)
	})
}

// check is a single verified call against the native library
type check struct {
	name string
	run  func(lib Native) error
}

var checks = []check{
	{"add_i32", func(lib Native) error {
		cases := [][3]int32{{2, 40, 42}, {-7, 7, 0}, {math.MaxInt32, 0, math.MaxInt32}, {-100, -23, -123}}
		for _, c := range cases {
			if got := lib.AddI32(c[0], c[1]); got != c[2] {
				return fmt.Errorf("AddI32(%d, %d) = %d, want %d", c[0], c[1], got, c[2])
			}
		}
		return nil
	}},
	{"dot2f", func(lib Native) error {
		cases := [][5]float32{{1, 2, 3, 4, 11}, {0.5, -1.5, 2, 4, -5}, {0, 0, 9, 9, 0}}
		for _, c := range cases {
			got := lib.Dot2f(c[0], c[1], c[2], c[3])
			if math.Abs(got-float64(c[4])) > 1e-5 {
				return fmt.Errorf("Dot2f(%g, %g, %g, %g) = %g, want %g", c[0], c[1], c[2], c[3], got, c[4])
			}
		}
		return nil
	}},
	{"is_positive", func(lib Native) error {
		cases := map[float64]bool{1: true, 1e-300: true, 0: false, -0.5: false, math.Inf(-1): false}
		for v, want := range cases {
			if got := lib.IsPositive(v); got != want {
				return fmt.Errorf("IsPositive(%g) = %t, want %t", v, got, want)
			}
		}
		return nil
	}},
	{"make_point/manhattan", func(lib Native) error {
		p := lib.MakePoint(3, -4)
		if p.X != 3 || p.Y != -4 {
			return fmt.Errorf("MakePoint(3, -4) = (%d, %d)", p.X, p.Y)
		}
		if got := lib.Manhattan(p); got != 7 {
			return fmt.Errorf("Manhattan(3, -4) = %d, want 7", got)
		}
		return nil
	}},
	{"hello", func(lib Native) error {
		if got := lib.Hello("World"); !strings.Contains(got, "World") {
			return fmt.Errorf("Hello(World) = %q", got)
		}
		if got := lib.HelloDefault(); got == "" {
			return fmt.Errorf("HelloDefault() returned an empty string")
		}
		return nil
	}},
}

func runCheck(lib Native, w io.Writer) error {
	var failed int
	for _, c := range checks {
		if err := c.run(lib); err != nil {
			failed++
			fmt.Fprintf(w, "✗ %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(w, "✓ %s\n", c.name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintln(w, "All checks passed")
	return nil
}
