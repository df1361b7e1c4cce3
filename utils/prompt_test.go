package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPrompt(t *testing.T) {
	out, err := RenderPrompt("Summarize: {transcript}", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "Summarize: hello world", out)
}

func TestRenderPromptMissingPlaceholder(t *testing.T) {
	_, err := RenderPrompt("Summarize everything.", "text")
	assert.Error(t, err)
}

func TestRenderPromptDuplicatePlaceholder(t *testing.T) {
	_, err := RenderPrompt("{transcript} and again {transcript}", "text")
	assert.Error(t, err)
}

func TestRenderPromptUnknownToken(t *testing.T) {
	_, err := RenderPrompt("Summarize {transcript} in {language}", "text")
	assert.Error(t, err)
}

func TestRenderPromptTranscriptWithBraces(t *testing.T) {
	// Braces in the transcript text itself are data, not tokens.
	out, err := RenderPrompt("Summarize: {transcript}", "code sample: {foo}")
	require.NoError(t, err)
	assert.Equal(t, "Summarize: code sample: {foo}", out)
}
