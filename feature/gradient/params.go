package gradient

import "fmt"

// ElevationTolerance is the change below which an adjustment is considered
// a no-op and produces no record (5 cm).
const ElevationTolerance = 0.05

// Params holds the numeric knobs of the gradient engine. All values are
// validated once at engine construction, never mid-pass.
type Params struct {
	// ManholeSearchRadius is the planar distance in meters within which a
	// pipe vertex is considered connected to a shaft.
	ManholeSearchRadius float64 `mapstructure:"manhole_search_radius" default:"3.0"`

	// MinGradientPercent is the minimum slope magnitude to enforce.
	MinGradientPercent float64 `mapstructure:"min_gradient_percent" default:"0.5"`

	// MaxGradientPercent is the maximum slope magnitude to allow.
	MaxGradientPercent float64 `mapstructure:"max_gradient_percent" default:"12.0"`

	// GradientBreakThreshold is the slope change in percent above which a
	// vertex counts as an engineered break that must survive normalization.
	GradientBreakThreshold float64 `mapstructure:"gradient_break_threshold" default:"5.0"`
}

// Validate fails fast on configuration errors.
func (p Params) Validate() error {
	if p.ManholeSearchRadius <= 0 {
		return fmt.Errorf("gradient: manhole search radius must be positive, got %v", p.ManholeSearchRadius)
	}
	if p.MinGradientPercent < 0 {
		return fmt.Errorf("gradient: minimum gradient must not be negative, got %v", p.MinGradientPercent)
	}
	if p.MaxGradientPercent <= 0 {
		return fmt.Errorf("gradient: maximum gradient must be positive, got %v", p.MaxGradientPercent)
	}
	if p.MinGradientPercent > p.MaxGradientPercent {
		return fmt.Errorf("gradient: minimum gradient %v exceeds maximum %v",
			p.MinGradientPercent, p.MaxGradientPercent)
	}
	if p.GradientBreakThreshold <= 0 {
		return fmt.Errorf("gradient: break threshold must be positive, got %v", p.GradientBreakThreshold)
	}
	return nil
}
