package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Detection DetectionConfig `json:"detection"`
	Pipeline  PipelineConfig  `json:"pipeline"`
	Model     ModelConfig     `json:"model"`
}

// DetectionConfig holds configuration for the detection filter
type DetectionConfig struct {
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	MinDetections       int     `json:"min_detections"`
	MaxDetections       int     `json:"max_detections"`
}

// PipelineConfig holds configuration for the reasoning pipeline
type PipelineConfig struct {
	MaxElements      int `json:"max_elements"`
	TargetActivities int `json:"target_activities"`
}

// ModelConfig holds configuration for the vision model backend
type ModelConfig struct {
	Backend    string `json:"backend"`
	URL        string `json:"url"`
	Model      string `json:"model"`
	SendFormat string `json:"send_format"`
	SendSize   int    `json:"send_size"`
	SendQ      int    `json:"send_quality"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Detection: DetectionConfig{
			ConfidenceThreshold: 0.25,
			MinDetections:       3,
			MaxDetections:       50,
		},
		Pipeline: PipelineConfig{
			MaxElements:      5,
			TargetActivities: 5,
		},
		Model: ModelConfig{
			Backend:    "ollama",
			URL:        "http://localhost:11434/api/chat",
			Model:      "llava:13b",
			SendFormat: "jpg",
			SendSize:   1536,
			SendQ:      85,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Detection.ConfidenceThreshold < 0 || c.Detection.ConfidenceThreshold > 1 {
		return fmt.Errorf("detection.confidence_threshold must be between 0 and 1")
	}

	if c.Detection.MinDetections < 1 {
		return fmt.Errorf("detection.min_detections must be positive")
	}

	if c.Detection.MaxDetections < c.Detection.MinDetections {
		return fmt.Errorf("detection.max_detections must be at least min_detections")
	}

	if c.Pipeline.MaxElements < 3 || c.Pipeline.MaxElements > 5 {
		return fmt.Errorf("pipeline.max_elements must be between 3 and 5")
	}

	if c.Pipeline.TargetActivities < 3 || c.Pipeline.TargetActivities > 5 {
		return fmt.Errorf("pipeline.target_activities must be between 3 and 5")
	}

	if c.Model.Backend != "ollama" && c.Model.Backend != "llamacpp" {
		return fmt.Errorf("model.backend must be ollama or llamacpp")
	}

	if c.Model.SendQ < 1 || c.Model.SendQ > 100 {
		return fmt.Errorf("model.send_quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "activity-analyzer", "config.json")
}
