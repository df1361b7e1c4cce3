package gateways

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/adamsai/video-summarizer/utils"
)

// DownloadResult describes a finished video download.
type DownloadResult struct {
	Filepath string
	Filename string
	FileSize int64
	Duration *float64
}

// VideoDownloader fetches remote videos. HLS playlists are downloaded
// segment by segment and remuxed to MP4; everything else is delegated to
// yt-dlp.
type VideoDownloader struct {
	client    *http.Client
	userAgent string
	threads   int
	log       *logrus.Logger
}

func NewVideoDownloader(userAgent string, threads int, log *logrus.Logger) *VideoDownloader {
	if threads < 1 {
		threads = 1
	}
	return &VideoDownloader{
		client:    &http.Client{},
		userAgent: userAgent,
		threads:   threads,
		log:       log,
	}
}

// Download fetches the video behind rawURL into outputDir. title, when
// given, becomes the base filename.
func (d *VideoDownloader) Download(ctx context.Context, rawURL, outputDir, title string) (*DownloadResult, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}

	if utils.IsM3U8URL(rawURL) {
		return d.downloadM3U8(ctx, rawURL, outputDir, title)
	}
	return d.downloadWithYtDlp(ctx, rawURL, outputDir, title)
}

func (d *VideoDownloader) downloadM3U8(ctx context.Context, rawURL, outputDir, title string) (*DownloadResult, error) {
	rawURL = NormalizeURL(rawURL)

	base := "video"
	if title != "" {
		base = utils.SlugFilename(title)
	}
	outputPath := filepath.Join(outputDir, base+".mp4")

	master, err := d.fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch master playlist: %w", err)
	}

	variantPath, resolution := ParseMasterPlaylist(master)
	if variantPath == "" {
		return nil, fmt.Errorf("no variants found in master playlist")
	}
	d.log.WithFields(logrus.Fields{"url": rawURL, "resolution": resolution}).Info("selected hls variant")

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	// Keep the query string on variant and segment URLs, it usually carries
	// signed access tokens.
	variantURL := rawURL[:strings.LastIndex(rawURL, "/")] + "/" + variantPath
	if parsed.RawQuery != "" && !strings.Contains(variantURL, "?") {
		variantURL += "?" + parsed.RawQuery
	}

	media, err := d.fetch(ctx, variantURL)
	if err != nil {
		return nil, fmt.Errorf("fetch media playlist: %w", err)
	}

	segments := ParseMediaPlaylist(media)
	if len(segments) == 0 {
		return nil, fmt.Errorf("no segments in media playlist")
	}
	d.log.WithField("segments", len(segments)).Info("downloading hls segments")

	segmentBase := variantURL[:strings.LastIndex(variantURL, "/")]
	data, failed := d.fetchSegments(ctx, segmentBase, parsed.RawQuery, segments)
	if failed == len(segments) {
		return nil, fmt.Errorf("all %d segments failed to download", len(segments))
	}
	if failed > 0 {
		d.log.WithField("failed", failed).Warn("some hls segments failed to download")
	}

	tsPath := strings.TrimSuffix(outputPath, ".mp4") + ".ts"
	if err := writeSegments(tsPath, data); err != nil {
		return nil, err
	}

	// Remux the concatenated TS stream into an MP4 container.
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", tsPath,
		"-c", "copy",
		"-movflags", "+faststart",
		"-y", outputPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		os.Remove(tsPath)
		return nil, fmt.Errorf("ffmpeg remux failed: %v, stderr: %s", err, stderr.String())
	}
	os.Remove(tsPath)

	size, err := utils.FileSize(outputPath)
	if err != nil {
		return nil, err
	}

	result := &DownloadResult{
		Filepath: outputPath,
		Filename: filepath.Base(outputPath),
		FileSize: size,
	}
	if dur, err := ProbeDuration(ctx, outputPath); err == nil {
		result.Duration = &dur
	}
	return result, nil
}

// fetchSegments downloads all segments with a bounded number of workers,
// preserving order by index. Returns the segment payloads and the number of
// failed segments.
func (d *VideoDownloader) fetchSegments(ctx context.Context, segmentBase, query string, segments []string) ([][]byte, int) {
	data := make([][]byte, len(segments))

	type job struct {
		idx  int
		path string
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < d.threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				segURL := segmentBase + "/" + j.path
				if query != "" && !strings.Contains(segURL, "?") {
					segURL += "?" + query
				}
				body, err := d.fetchBytes(ctx, segURL)
				if err != nil {
					d.log.WithError(err).WithField("segment", j.idx+1).Warn("segment download failed")
					continue
				}
				data[j.idx] = body
			}
		}()
	}

	for i, seg := range segments {
		jobs <- job{idx: i, path: seg}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, b := range data {
		if b == nil {
			failed++
		}
	}
	return data, failed
}

func (d *VideoDownloader) downloadWithYtDlp(ctx context.Context, rawURL, outputDir, title string) (*DownloadResult, error) {
	template := filepath.Join(outputDir, "%(title)s.%(ext)s")
	if title != "" {
		template = filepath.Join(outputDir, utils.SlugFilename(title)+".%(ext)s")
	}

	cmd := exec.CommandContext(ctx, "yt-dlp",
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
		"-o", template,
		"--no-simulate",
		"--print", "after_move:filepath",
		rawURL,
	)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp failed: %v, stderr: %s", err, stderr.String())
	}

	outputPath := strings.TrimSpace(out.String())
	if lines := strings.Split(outputPath, "\n"); len(lines) > 1 {
		outputPath = strings.TrimSpace(lines[len(lines)-1])
	}
	if outputPath == "" {
		return nil, fmt.Errorf("yt-dlp did not report an output file")
	}

	size, err := utils.FileSize(outputPath)
	if err != nil {
		return nil, fmt.Errorf("downloaded file missing: %w", err)
	}

	result := &DownloadResult{
		Filepath: outputPath,
		Filename: filepath.Base(outputPath),
		FileSize: size,
	}
	if dur, err := ProbeDuration(ctx, outputPath); err == nil {
		result.Duration = &dur
	}
	return result, nil
}

func (d *VideoDownloader) fetch(ctx context.Context, rawURL string) (string, error) {
	body, err := d.fetchBytes(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (d *VideoDownloader) fetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func writeSegments(path string, data [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, b := range data {
		if b == nil {
			continue
		}
		if _, err := f.Write(b); err != nil {
			return err
		}
	}
	return nil
}
