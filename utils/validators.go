package utils

import (
	"net/url"
	"strings"
)

// Supported container formats for upload.
var VideoExtensions = []string{"mp4", "avi", "mov", "mkv", "flv", "wmv", "webm", "m4v", "mpg", "mpeg"}

// IsValidVideoFile reports whether the filename carries a supported video
// extension.
func IsValidVideoFile(filename string) bool {
	if filename == "" {
		return false
	}
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, allowed := range VideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// IsValidURL reports whether s is an absolute http(s) URL.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsM3U8URL reports whether the URL points at an HLS playlist.
func IsM3U8URL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	lower := strings.ToLower(rawURL)
	if strings.Contains(lower, ".m3u8") {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(u.Path), ".m3u8")
}

// IsValidLanguageCode accepts ISO 639-1 codes with optional region suffix
// (ko, en, en-US, zh_TW).
func IsValidLanguageCode(language string) bool {
	language = strings.TrimSpace(language)
	if len(language) < 2 || len(language) > 10 {
		return false
	}
	stripped := strings.NewReplacer("-", "", "_", "").Replace(language)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

// IsValidStatus reports whether status is part of the allowed vocabulary.
func IsValidStatus(status string, allowed []string) bool {
	for _, s := range allowed {
		if status == s {
			return true
		}
	}
	return false
}
