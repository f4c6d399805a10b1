package input

import "time"

// Config holds the keystroke gate settings.
type Config struct {
	// MinLength is the shortest burst emitted without Enter.
	MinLength int `mapstructure:"min_length" default:"8"`
	// ManualThresholdMs is the keystroke gap, in milliseconds, above which input counts as typed by hand.
	ManualThresholdMs int `mapstructure:"manual_threshold_ms" default:"50"`
}

const (
	DefaultMinLength       = 8
	DefaultManualThreshold = 50 * time.Millisecond
)

// ManualThreshold returns the threshold as a duration.
func (c Config) ManualThreshold() time.Duration {
	if c.ManualThresholdMs <= 0 {
		return DefaultManualThreshold
	}
	return time.Duration(c.ManualThresholdMs) * time.Millisecond
}
