// Package apperr carries the error taxonomy shared by services and
// controllers. Expected domain failures travel as *Error values with a Kind;
// anything else is treated as an internal error.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
	KindConflict
	KindTemplateError
	KindExtractionFailed
	KindDownloadFailed
	KindTranscriptionFailed
	KindSummarizationFailed
	KindEmptyResult
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindTemplateError:
		return "template_error"
	case KindExtractionFailed:
		return "extraction_failed"
	case KindDownloadFailed:
		return "download_failed"
	case KindTranscriptionFailed:
		return "transcription_failed"
	case KindSummarizationFailed:
		return "summarization_failed"
	case KindEmptyResult:
		return "empty_result"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new Error. The cause string stays visible to
// callers through Error().
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, or KindInternal for unrecognized errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// HTTPStatus maps an error kind to the status code the API surfaces.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput, KindConflict, KindTemplateError:
		return http.StatusBadRequest
	case KindExtractionFailed, KindDownloadFailed, KindTranscriptionFailed,
		KindSummarizationFailed, KindEmptyResult:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
