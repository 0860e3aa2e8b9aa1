package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFailsWithoutLibrary(t *testing.T) {
	require.NoError(t, Shutdown())
	t.Cleanup(func() { _ = Shutdown() })

	opened := 0
	config := testConfig(t.TempDir())
	config.Open = func(string) (uintptr, error) {
		opened++
		return 0, nil
	}

	err := Init(config)
	require.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "build it with CMake first")

	// The failure is cached until Shutdown
	assert.Equal(t, err, Init(testConfig(t.TempDir())))
	lib, defErr := Default()
	assert.Nil(t, lib)
	assert.Equal(t, err, defErr)
	assert.Zero(t, opened)

	require.NoError(t, Shutdown())
	assert.ErrorIs(t, Init(config), ErrLibraryNotFound)
}

func TestShutdownWithoutInit(t *testing.T) {
	require.NoError(t, Shutdown())
	require.NoError(t, Shutdown())
}
