package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/archivekit/compressio/internal/core/domain"
)

type Config struct {
	Archive     ArchiveConfig `yaml:"archive"`
	Compression int           `yaml:"compression"` // 0 none, 1-9 deflate level, -1 library default
}

// Holds archive-layer configuration for the CLI driver.
type ArchiveConfig struct {
	ChunkSize uint32 `yaml:"chunk_size"` // Payload size of the frames the CLI writes
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Compression: domain.DefaultCompression,
		Archive: ArchiveConfig{
			ChunkSize: 4 * 1024, // 4KB
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Initialize a new Config struct
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if !domain.ValidCompressionCode(config.Compression) {
		return fmt.Errorf(
			"compression must be between %d and %d, got %d",
			domain.DefaultCompression, domain.MaxCompressionLevel, config.Compression,
		)
	}

	if err := validateArchiveConfig(&config.Archive); err != nil {
		return fmt.Errorf("invalid archive configuration: %w", err)
	}

	return nil
}

func validateArchiveConfig(config *ArchiveConfig) error {
	if config.ChunkSize == 0 {
		return fmt.Errorf("chunk_size must be greater than 0")
	}

	if config.ChunkSize > 16*1024*1024 {
		return fmt.Errorf("chunk_size must not exceed 16MB (16777216 bytes), got %d bytes", config.ChunkSize)
	}

	return nil
}
