package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds every runtime setting, read once from the environment at
// startup and passed explicitly to the components that need it.
type Config struct {
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// API keys
	OpenAIAPIKey     string
	OpenRouterAPIKey string
	GeminiAPIKey     string

	// Storage paths
	StorageRoot string
	VideosDir   string
	AudiosDir   string

	// Limits
	MaxUploadSizeMB int64

	// Audio extraction
	DefaultAudioBitrate string

	// AI models
	LLMProvider         string // openrouter | gemini
	DefaultLLMModel     string
	DefaultWhisperModel string
	DefaultLanguage     string

	// Download
	DownloadThreads int
	UserAgent       string

	// Gateway timeouts
	ExtractTimeout    time.Duration
	TranscribeTimeout time.Duration
	SummarizeTimeout  time.Duration
	DownloadTimeout   time.Duration
}

// Load reads configuration from environment variables, applying defaults for
// everything except the database credentials and API keys.
func Load() Config {
	storageRoot := envOr("STORAGE_ROOT", "./storage")

	cfg := Config{
		Port: envOr("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),

		StorageRoot: storageRoot,
		VideosDir:   envOr("VIDEOS_DIR", filepath.Join(storageRoot, "videos")),
		AudiosDir:   envOr("AUDIOS_DIR", filepath.Join(storageRoot, "audios")),

		MaxUploadSizeMB: envInt64Or("MAX_UPLOAD_SIZE_MB", 500),

		DefaultAudioBitrate: envOr("DEFAULT_AUDIO_BITRATE", "192k"),

		LLMProvider:         envOr("LLM_PROVIDER", "openrouter"),
		DefaultLLMModel:     envOr("DEFAULT_LLM_MODEL", "anthropic/claude-3.5-sonnet"),
		DefaultWhisperModel: envOr("DEFAULT_WHISPER_MODEL", "whisper-1"),
		DefaultLanguage:     envOr("DEFAULT_LANGUAGE", "ko"),

		DownloadThreads: int(envInt64Or("DOWNLOAD_THREADS", 8)),
		UserAgent:       envOr("DOWNLOAD_USER_AGENT", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"),

		ExtractTimeout:    envDurationOr("EXTRACT_TIMEOUT", 5*time.Minute),
		TranscribeTimeout: envDurationOr("TRANSCRIBE_TIMEOUT", 5*time.Minute),
		SummarizeTimeout:  envDurationOr("SUMMARIZE_TIMEOUT", 2*time.Minute),
		DownloadTimeout:   envDurationOr("DOWNLOAD_TIMEOUT", 5*time.Minute),
	}

	return cfg
}

// EnsureStorageDirs creates the artifact directories if missing.
func (c Config) EnsureStorageDirs() error {
	for _, dir := range []string{c.StorageRoot, c.VideosDir, c.AudiosDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
