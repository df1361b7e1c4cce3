package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// UniqueFilename keeps the original extension and prefixes a short uuid so
// two uploads of the same file never collide on disk.
func UniqueFilename(original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s_%s%s", uuid.New().String()[:8], slug.Make(base), ext)
}

// SlugFilename sanitizes a user-supplied title into a safe base filename.
func SlugFilename(title string) string {
	s := slug.Make(title)
	if s == "" {
		return "video"
	}
	return s
}

// DeleteFileSafe removes a file, treating a missing file as success.
func DeleteFileSafe(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FileSize returns the byte size of path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
