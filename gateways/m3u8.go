package gateways

import (
	"strconv"
	"strings"
)

// ParseMasterPlaylist picks the highest-bandwidth variant from an HLS master
// playlist. Returns the variant path and its advertised resolution.
func ParseMasterPlaylist(content string) (string, string) {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	var (
		bestBandwidth int
		bestVariant   string
		bestRes       string
	)

	for i, line := range lines {
		if !strings.HasPrefix(line, "#EXT-X-STREAM-INF:") {
			continue
		}

		attrs := map[string]string{}
		for _, attr := range strings.Split(strings.TrimPrefix(line, "#EXT-X-STREAM-INF:"), ",") {
			if k, v, ok := strings.Cut(attr, "="); ok {
				attrs[k] = v
			}
		}

		bandwidth, _ := strconv.Atoi(attrs["BANDWIDTH"])
		resolution := attrs["RESOLUTION"]
		if resolution == "" {
			resolution = "unknown"
		}

		if i+1 < len(lines) {
			variant := strings.TrimSpace(lines[i+1])
			if variant != "" && bandwidth > bestBandwidth {
				bestBandwidth = bandwidth
				bestVariant = variant
				bestRes = resolution
			}
		}
	}

	return bestVariant, bestRes
}

// ParseMediaPlaylist returns the segment paths of an HLS media playlist.
func ParseMediaPlaylist(content string) []string {
	var segments []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			segments = append(segments, line)
		}
	}
	return segments
}

// NormalizeURL strips whitespace, newlines and stray backslashes that show up
// when playlist URLs are copy-pasted.
func NormalizeURL(raw string) string {
	return strings.ReplaceAll(strings.Join(strings.Fields(raw), ""), `\`, "")
}
