package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// TranscriptPlaceholder is the substitution token a prompt template must
// carry exactly once.
const TranscriptPlaceholder = "{transcript}"

var placeholderPattern = regexp.MustCompile(`\{[a-zA-Z_][a-zA-Z0-9_]*\}`)

// RenderPrompt substitutes the transcript text into the template body.
// Rendering fails closed: the body must contain exactly one {transcript}
// token and no other placeholder-looking tokens, so a malformed template is
// rejected instead of producing a broken prompt.
func RenderPrompt(template, transcript string) (string, error) {
	count := strings.Count(template, TranscriptPlaceholder)
	if count == 0 {
		return "", fmt.Errorf("template is missing the %s placeholder", TranscriptPlaceholder)
	}
	if count > 1 {
		return "", fmt.Errorf("template contains %d %s placeholders, expected one", count, TranscriptPlaceholder)
	}

	for _, token := range placeholderPattern.FindAllString(template, -1) {
		if token != TranscriptPlaceholder {
			return "", fmt.Errorf("template contains unknown placeholder %s", token)
		}
	}

	return strings.Replace(template, TranscriptPlaceholder, transcript, 1), nil
}
