package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"

	"github.com/agiangrant/abi"
	"github.com/agiangrant/abi/internal/ffi"
)

// fakeNative answers like the reference library
type fakeNative struct {
	brokenManhattan bool
}

func (fakeNative) AddI32(a, b int32) int32              { return a + b }
func (fakeNative) Dot2f(a0, a1, b0, b1 float32) float64 { return float64(a0*b0 + a1*b1) }
func (fakeNative) IsPositive(v float64) bool            { return v > 0 }
func (fakeNative) MakePoint(x, y int32) abi.Point       { return abi.Point{X: x, Y: y} }
func (f fakeNative) Manhattan(p abi.Point) int64 {
	if f.brokenManhattan {
		return int64(p.X) + int64(p.Y)
	}
	x, y := int64(p.X), int64(p.Y)
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}
func (fakeNative) Hello(name string) string { return "Hello, " + name + " from C++!" }
func (fakeNative) HelloDefault() string     { return "Hello, world from C++!" }

var _ Native = (*abi.Library)(nil)

func TestCallCommands(t *testing.T) {
	tests := []struct {
		name string
		run  func(Native, []string, io.Writer) error
		args []string
		want string
	}{
		{"add", runAdd, []string{"2", "40"}, "42\n"},
		{"dot", runDot, []string{"1", "2", "3", "4"}, "11\n"},
		{"positive", runPositive, []string{"-1"}, "false\n"},
		{"point", runPoint, []string{"3", "-4"}, "point(x=3, y=-4) manhattan=7\n"},
		{"hello", runHello, []string{"World"}, "Hello, World from C++!\n"},
		{"hello default", runHello, nil, "Hello, world from C++!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, tt.run(fakeNative{}, tt.args, &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCallCommandsRejectBadNumbers(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, runAdd(fakeNative{}, []string{"1", "9999999999"}, &out))
	assert.Error(t, runDot(fakeNative{}, []string{"1", "x", "3", "4"}, &out))
	assert.Error(t, runPositive(fakeNative{}, []string{"nan?"}, &out))
	assert.Empty(t, out.String())
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCheck(fakeNative{}, &out))
	assert.Equal(t, len(checks)+1, strings.Count(out.String(), "\n"))
	assert.Contains(t, out.String(), "All checks passed")
}

func TestRunCheckReportsFailures(t *testing.T) {
	var out bytes.Buffer
	err := runCheck(fakeNative{brokenManhattan: true}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of")
	assert.Contains(t, out.String(), "✗ make_point/manhattan")
}

func TestRunLocate(t *testing.T) {
	root := t.TempDir()
	config := abi.DefaultConfig()
	config.Library.Roots = []string{root}

	var out bytes.Buffer
	assert.ErrorIs(t, runLocate("linux", config, &out), abi.ErrLibraryNotFound)
	assert.Contains(t, out.String(), filepath.Join(root, "out", "lib", "libabi.so"))

	libPath := filepath.Join(root, "out", "lib", "libabi.so")
	require.NoError(t, os.MkdirAll(filepath.Dir(libPath), 0755))
	require.NoError(t, os.WriteFile(libPath, nil, 0644))

	out.Reset()
	require.NoError(t, runLocate("linux", config, &out))
	assert.Contains(t, out.String(), "✓ "+libPath)
}

func TestLocateVerboseInstallsLogger(t *testing.T) {
	abi.SetLogger(nil)
	t.Cleanup(func() { abi.SetLogger(nil) })
	require.False(t, ffi.Logger().Core().Enabled(zap.DebugLevel))

	config := filepath.Join(t.TempDir(), "abi.toml")
	_ = Locate([]string{"-v", "-config", config, "-os", "linux"})

	assert.True(t, ffi.Logger().Core().Enabled(zap.DebugLevel))
}
