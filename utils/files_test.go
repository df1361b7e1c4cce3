package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueFilename(t *testing.T) {
	a := UniqueFilename("My Lecture (1).mp4")
	b := UniqueFilename("My Lecture (1).mp4")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".mp4"))
	assert.Contains(t, a, "my-lecture")
	assert.NotContains(t, a, " ")
}

func TestSlugFilename(t *testing.T) {
	assert.Equal(t, "my-great-video", SlugFilename("My Great Video"))
	assert.Equal(t, "video", SlugFilename("???"))
}

func TestDeleteFileSafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doomed.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, DeleteFileSafe(path))
	assert.NoFileExists(t, path)

	// A second delete of the same path is still a success.
	assert.NoError(t, DeleteFileSafe(path))
}

func TestFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sized.bin")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	size, err := FileSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = FileSize(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
