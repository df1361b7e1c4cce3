package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// FFmpegExtractor extracts audio tracks by shelling out to ffmpeg/ffprobe.
type FFmpegExtractor struct{}

func NewFFmpegExtractor() *FFmpegExtractor { return &FFmpegExtractor{} }

// ExtractAudio writes the audio track of videoPath to outputPath as MP3 at
// the given bitrate and returns the source duration in seconds.
func (e *FFmpegExtractor) ExtractAudio(ctx context.Context, videoPath, outputPath, bitrate string) (float64, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return 0, fmt.Errorf("video file not found: %s", videoPath)
	}

	duration, err := ProbeDuration(ctx, videoPath)
	if err != nil {
		return 0, err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", videoPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", bitrate,
		"-y",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffmpeg failed: %v, stderr: %s", err, stderr.String())
	}

	return duration, nil
}

// ProbeDuration on the extractor lets callers probe uploads without a second
// collaborator.
func (e *FFmpegExtractor) ProbeDuration(ctx context.Context, path string) (float64, error) {
	return ProbeDuration(ctx, path)
}

type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration reads the container duration of a media file via ffprobe.
func ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %v, stderr: %s", err, stderr.String())
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probe); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("no duration in ffprobe output for %s", path)
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probe.Format.Duration, err)
	}
	return duration, nil
}
