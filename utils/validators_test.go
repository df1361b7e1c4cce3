package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidVideoFile(t *testing.T) {
	assert.True(t, IsValidVideoFile("lecture.mp4"))
	assert.True(t, IsValidVideoFile("CLIP.MOV"))
	assert.True(t, IsValidVideoFile("a.b.webm"))
	assert.False(t, IsValidVideoFile("song.mp3"))
	assert.False(t, IsValidVideoFile("noext"))
	assert.False(t, IsValidVideoFile(""))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://example.com/video.m3u8"))
	assert.True(t, IsValidURL("http://example.com"))
	assert.False(t, IsValidURL("ftp://example.com/file"))
	assert.False(t, IsValidURL("example.com/no-scheme"))
	assert.False(t, IsValidURL("https://"))
	assert.False(t, IsValidURL(""))
}

func TestIsM3U8URL(t *testing.T) {
	assert.True(t, IsM3U8URL("https://cdn.example.com/stream/index.m3u8"))
	assert.True(t, IsM3U8URL("https://cdn.example.com/index.M3U8?token=abc"))
	assert.False(t, IsM3U8URL("https://youtube.com/watch?v=abc"))
	assert.False(t, IsM3U8URL(""))
}

func TestIsValidLanguageCode(t *testing.T) {
	assert.True(t, IsValidLanguageCode("ko"))
	assert.True(t, IsValidLanguageCode("en-US"))
	assert.True(t, IsValidLanguageCode("zh_TW"))
	assert.False(t, IsValidLanguageCode("k"))
	assert.False(t, IsValidLanguageCode("not a language"))
	assert.False(t, IsValidLanguageCode(""))
}

func TestIsValidStatus(t *testing.T) {
	allowed := []string{"uploaded", "processing", "completed", "failed"}
	assert.True(t, IsValidStatus("uploaded", allowed))
	assert.False(t, IsValidStatus("extracted", allowed))
	assert.False(t, IsValidStatus("", allowed))
}
