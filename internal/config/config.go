package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// CaptureConfig holds the settings for the live capture source.
type CaptureConfig struct {
	Interface        string   `yaml:"interface"`
	Duration         string   `yaml:"duration"`
	TsharkPath       string   `yaml:"tshark_path"`
	OutboundPrefixes []string `yaml:"outbound_prefixes"`
}

// SummaryConfig holds the settings for the summary builder and writer.
type SummaryConfig struct {
	TopN       int    `yaml:"top_n"`
	OutputPath string `yaml:"output_path"`
}

// PublisherConfig holds the optional NATS publisher settings.
type PublisherConfig struct {
	Enabled bool   `yaml:"enabled"`
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// APIConfig holds the settings for the summary HTTP server.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Capture   CaptureConfig   `yaml:"capture"`
	Summary   SummaryConfig   `yaml:"summary"`
	Publisher PublisherConfig `yaml:"publisher"`
	API       APIConfig       `yaml:"api"`
}

// Default returns the compiled-in configuration used when no config file is
// present, so the capture binary can run without any arguments.
func Default() *Config {
	return &Config{
		Capture: CaptureConfig{
			Interface:        "wg0",
			Duration:         "60s",
			TsharkPath:       "tshark",
			OutboundPrefixes: []string{"fd42:42:42:", "10.66.66."},
		},
		Summary: SummaryConfig{
			TopN:       20,
			OutputPath: "/opt/drofbot/.drofbot/traffic/traffic-context.json",
		},
		Publisher: PublisherConfig{
			NATSURL: "nats://127.0.0.1:4222",
			Subject: "trafficlens.summary",
		},
		API: APIConfig{
			ListenAddr: ":8089",
		},
	}
}

// LoadConfig reads the configuration from a YAML file and returns a Config
// struct. A missing file is not an error: the defaults are returned instead.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	return cfg, nil
}

// CaptureDuration parses the configured capture window length.
func (c *Config) CaptureDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Capture.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid capture duration: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("capture duration must be a positive duration")
	}
	return d, nil
}
