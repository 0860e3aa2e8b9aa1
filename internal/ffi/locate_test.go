package ffi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(roots ...string) Config {
	return Config{
		Library: LibraryConfig{
			Roots:          roots,
			OutDir:         "out",
			Configurations: DefaultConfigurations,
		},
	}
}

func TestLibraryName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "abi.dll"},
		{"darwin", "libabi.dylib"},
		{"ios", "libabi.dylib"},
		{"linux", "libabi.so"},
		{"android", "libabi.so"},
		{"freebsd", "libabi.so"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, LibraryName(tt.goos))
		})
	}
}

func TestCandidatesOrder(t *testing.T) {
	root := "repo"
	out := filepath.Join(root, "out")

	tests := []struct {
		name string
		goos string
		want []string
	}{
		{
			name: "linux",
			goos: "linux",
			want: []string{filepath.Join(out, "lib", "libabi.so")},
		},
		{
			name: "darwin",
			goos: "darwin",
			want: []string{filepath.Join(out, "lib", "libabi.dylib")},
		},
		{
			name: "windows multi-config then fallback",
			goos: "windows",
			want: []string{
				filepath.Join(out, "Release", "bin", "abi.dll"),
				filepath.Join(out, "Release", "lib", "abi.dll"),
				filepath.Join(out, "Debug", "bin", "abi.dll"),
				filepath.Join(out, "Debug", "lib", "abi.dll"),
				filepath.Join(out, "RelWithDebInfo", "bin", "abi.dll"),
				filepath.Join(out, "RelWithDebInfo", "lib", "abi.dll"),
				filepath.Join(out, "MinSizeRel", "bin", "abi.dll"),
				filepath.Join(out, "MinSizeRel", "lib", "abi.dll"),
				filepath.Join(out, "bin", "abi.dll"),
				filepath.Join(out, "lib", "abi.dll"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidates(tt.goos, testConfig(root)))
		})
	}
}

func TestCandidatesExplicitPathFirst(t *testing.T) {
	config := testConfig("a", "b")
	config.Library.Path = "/opt/abi/libabi.so"

	got := Candidates("linux", config)
	assert.Equal(t, []string{
		"/opt/abi/libabi.so",
		filepath.Join("a", "out", "lib", "libabi.so"),
		filepath.Join("b", "out", "lib", "libabi.so"),
	}, got)
}

func TestCandidatesDropsDuplicates(t *testing.T) {
	got := Candidates("linux", testConfig(".", ".", "other"))
	assert.Equal(t, []string{
		filepath.Join("out", "lib", "libabi.so"),
		filepath.Join("other", "out", "lib", "libabi.so"),
	}, got)
}

func TestLocateKeepsOnlyExisting(t *testing.T) {
	config := testConfig("repo")
	present := map[string]bool{
		filepath.Join("repo", "out", "Debug", "lib", "abi.dll"): true,
		filepath.Join("repo", "out", "bin", "abi.dll"):          true,
	}
	config.Exists = func(path string) bool { return present[path] }

	got := Locate("windows", config)
	assert.Equal(t, []string{
		filepath.Join("repo", "out", "Debug", "lib", "abi.dll"),
		filepath.Join("repo", "out", "bin", "abi.dll"),
	}, got)
}

func TestLocateOnDisk(t *testing.T) {
	root := t.TempDir()
	libDir := filepath.Join(root, "out", "lib")
	require.NoError(t, os.MkdirAll(libDir, 0755))
	libPath := filepath.Join(libDir, "libabi.so")
	require.NoError(t, os.WriteFile(libPath, []byte("not really"), 0644))

	assert.Equal(t, []string{libPath}, Locate("linux", testConfig(root)))
	assert.Empty(t, Locate("darwin", testConfig(root)))
}
