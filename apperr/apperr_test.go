package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindNotFound, "Video not found with id: %d", 7)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))

	wrapped := fmt.Errorf("loading video: %w", err)
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("ffmpeg exited 1")
	err := Wrap(KindExtractionFailed, cause, "audio extraction failed")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ffmpeg exited 1")
	assert.Contains(t, err.Error(), "audio extraction failed")
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindInvalidInput, http.StatusBadRequest},
		{KindConflict, http.StatusBadRequest},
		{KindTemplateError, http.StatusBadRequest},
		{KindExtractionFailed, http.StatusBadGateway},
		{KindDownloadFailed, http.StatusBadGateway},
		{KindTranscriptionFailed, http.StatusBadGateway},
		{KindSummarizationFailed, http.StatusBadGateway},
		{KindEmptyResult, http.StatusBadGateway},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(New(tc.kind, "x")), tc.kind.String())
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
