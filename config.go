package smartface

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CaptureConfig defines the per session capture configuration.  It is
// immutable once a session has started.
type CaptureConfig struct {
	// MaxCaptures is the number of face captures allowed before the session
	// is exhausted
	MaxCaptures int `yaml:"max_captures"`
	// MaxYawDegrees is the maximum absolute yaw angle allowed for a frame
	// to qualify
	MaxYawDegrees float32 `yaml:"max_yaw_degrees"`
	// MaxPitchDegrees is the maximum absolute pitch angle allowed for a
	// frame to qualify, before any pitch scaling applied by the capturer
	MaxPitchDegrees float32 `yaml:"max_pitch_degrees"`
	// Padding is the fractional padding added around the landmark bounding
	// box when cropping, eg. 0.3 grows the box by 30%
	Padding float32 `yaml:"padding"`
}

// DefaultCaptureConfig returns a capture configuration with the default
// values used by the browser demo:
// - MaxCaptures: 5
// - MaxYawDegrees: 15
// - MaxPitchDegrees: 15
// - Padding: 0.3
func DefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		MaxCaptures:     5,
		MaxYawDegrees:   15.0,
		MaxPitchDegrees: 15.0,
		Padding:         0.3,
	}
}

// Validate checks the configuration values are usable
func (c CaptureConfig) Validate() error {

	if c.MaxCaptures <= 0 {
		return fmt.Errorf("max_captures must be greater than zero, got %d", c.MaxCaptures)
	}

	if c.MaxYawDegrees <= 0 {
		return fmt.Errorf("max_yaw_degrees must be greater than zero, got %f", c.MaxYawDegrees)
	}

	if c.MaxPitchDegrees <= 0 {
		return fmt.Errorf("max_pitch_degrees must be greater than zero, got %f", c.MaxPitchDegrees)
	}

	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %f", c.Padding)
	}

	return nil
}

// LoadCaptureConfig reads a capture configuration from a YAML file using
// the fields max_captures, max_yaw_degrees, max_pitch_degrees, and padding.
// Fields missing from the file keep their default values.
func LoadCaptureConfig(file string) (CaptureConfig, error) {

	cfg := DefaultCaptureConfig()

	data, err := os.ReadFile(file)

	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, &cfg)

	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	err = cfg.Validate()

	if err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
