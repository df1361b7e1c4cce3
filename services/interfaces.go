package services

import (
	"context"

	"github.com/adamsai/video-summarizer/gateways"
)

// Gateway contracts consumed by the pipeline services. Each wraps exactly one
// external capability; none retry, none are idempotent. Implementations live
// in the gateways package, tests substitute stubs.

// AudioExtractor extracts the audio track of a video into an MP3 file and
// returns the source duration in seconds.
type AudioExtractor interface {
	ExtractAudio(ctx context.Context, videoPath, outputPath, bitrate string) (float64, error)
}

// MediaProber reads the duration of a media file.
type MediaProber interface {
	ProbeDuration(ctx context.Context, path string) (float64, error)
}

// Downloader fetches a remote video into outputDir.
type Downloader interface {
	Download(ctx context.Context, rawURL, outputDir, title string) (*gateways.DownloadResult, error)
}

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
	Model() string
}

// Completer runs a prompt through an LLM.
type Completer interface {
	Complete(ctx context.Context, prompt, model string) (string, error)
}
