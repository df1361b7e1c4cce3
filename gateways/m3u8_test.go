package gateways

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const masterPlaylist = `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=800000,RESOLUTION=640x360
low/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2500000,RESOLUTION=1920x1080
high/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=1400000,RESOLUTION=1280x720
mid/index.m3u8
`

func TestParseMasterPlaylistPicksHighestBandwidth(t *testing.T) {
	variant, resolution := ParseMasterPlaylist(masterPlaylist)
	assert.Equal(t, "high/index.m3u8", variant)
	assert.Equal(t, "1920x1080", resolution)
}

func TestParseMasterPlaylistNoVariants(t *testing.T) {
	variant, _ := ParseMasterPlaylist("#EXTM3U\n")
	assert.Empty(t, variant)
}

func TestParseMediaPlaylist(t *testing.T) {
	content := `#EXTM3U
#EXT-X-TARGETDURATION:10
#EXTINF:9.6,
seg0.ts
#EXTINF:9.6,
seg1.ts
#EXT-X-ENDLIST
`
	segments := ParseMediaPlaylist(content)
	assert.Equal(t, []string{"seg0.ts", "seg1.ts"}, segments)
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example.com/a/index.m3u8",
		NormalizeURL(" https://cdn.example.com\\/a/index.m3u8\n"),
	)
}
