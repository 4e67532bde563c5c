package cover

import "fmt"

// Config holds the numeric knobs of the cover height pass.
type Config struct {
	// MinHeight is the smallest cover-to-invert height a shaft record gets,
	// in meters. Shafts whose computed height falls below are clamped.
	MinHeight float64 `mapstructure:"min_height" default:"1.0"`

	// SearchRadius is the planar distance in meters within which a pipe
	// endpoint counts as connected to a shaft.
	SearchRadius float64 `mapstructure:"search_radius" default:"3.0"`
}

// Validate fails fast on configuration errors.
func (c Config) Validate() error {
	if c.MinHeight <= 0 {
		return fmt.Errorf("cover: minimum height must be positive, got %v", c.MinHeight)
	}
	if c.SearchRadius <= 0 {
		return fmt.Errorf("cover: search radius must be positive, got %v", c.SearchRadius)
	}
	return nil
}
