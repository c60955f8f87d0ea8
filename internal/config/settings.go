package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ytget/dy/internal/platform"
)

// Environment variable names
const (
	EnvYTDLPBinary = "DY_YTDLP_BINARY"
	EnvDownloadDir = "DY_DOWNLOAD_DIR"
	EnvChunkSize   = "DY_CHUNK_SIZE"
	EnvLogLevel    = "DY_LOG_LEVEL"
)

// Default values
const (
	DefaultYTDLPBinary = "yt-dlp"
	DefaultChunkSize   = 1023
	DefaultLogLevel    = "info"
)

// Chunk size limits
const (
	MinChunkSize = 1
	MaxChunkSize = 64 * 1024
)

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Settings holds the runtime configuration. Nothing is persisted: every
// value comes from the environment of the current run or a default.
type Settings struct {
	YTDLPBinary string
	DownloadDir string
	ChunkSize   int
	LogLevel    string
}

// NewSettings loads settings from the process environment
func NewSettings() (*Settings, error) {
	return LoadSettings(os.LookupEnv)
}

// LoadSettings loads settings using the given environment lookup
func LoadSettings(lookup LookupFunc) (*Settings, error) {
	s := &Settings{
		YTDLPBinary: getEnv(lookup, EnvYTDLPBinary, DefaultYTDLPBinary),
		DownloadDir: getEnv(lookup, EnvDownloadDir, ""),
		LogLevel:    strings.ToLower(getEnv(lookup, EnvLogLevel, DefaultLogLevel)),
	}

	if s.DownloadDir == "" {
		s.DownloadDir = platform.DefaultDownloadsDir()
	}

	chunkSize, err := getEnvInt(lookup, EnvChunkSize, DefaultChunkSize)
	if err != nil {
		return nil, err
	}
	if chunkSize < MinChunkSize || chunkSize > MaxChunkSize {
		return nil, fmt.Errorf("invalid %s: %d is outside %d..%d", EnvChunkSize, chunkSize, MinChunkSize, MaxChunkSize)
	}
	s.ChunkSize = chunkSize

	return s, nil
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	return s.DownloadDir
}

func getEnv(lookup LookupFunc, key, defaultValue string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(lookup LookupFunc, key string, defaultValue int) (int, error) {
	value := getEnv(lookup, key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
