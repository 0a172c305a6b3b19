package scene

import (
	"fmt"
	"time"
)

// Rules holds every gameplay tunable. The zero value is not usable; start from
// DefaultRules.
type Rules struct {
	HitLimit int `yaml:"hit_limit"`

	SpawnIntervalMin time.Duration `yaml:"spawn_interval_min"`
	SpawnIntervalMax time.Duration `yaml:"spawn_interval_max"`

	ObstacleHeight     float64       `yaml:"obstacle_height"`
	ObstacleMinWidth   float64       `yaml:"obstacle_min_width"`
	ObstacleWidthRatio float64       `yaml:"obstacle_width_ratio"` // of screen width
	TraversalDuration  time.Duration `yaml:"traversal_duration"`
	PulseMin           float64       `yaml:"pulse_min"`
	PulseMax           float64       `yaml:"pulse_max"`
	PulseHalfPeriod    time.Duration `yaml:"pulse_half_period"`

	SafeRadius float64 `yaml:"safe_radius"` // around Earth's y
	EdgeMargin float64 `yaml:"edge_margin"` // from top and bottom

	EarthSize       float64       `yaml:"earth_size"`
	EarthSpinPeriod time.Duration `yaml:"earth_spin_period"`
	ScaleMin        float64       `yaml:"scale_min"`
	ScaleMax        float64       `yaml:"scale_max"`
	ScaleUpFactor   float64       `yaml:"scale_up_factor"`
	ScaleDownFactor float64       `yaml:"scale_down_factor"`
}

func DefaultRules() Rules {
	return Rules{
		HitLimit: 5,

		SpawnIntervalMin: 1500 * time.Millisecond,
		SpawnIntervalMax: 3 * time.Second,

		ObstacleHeight:     20,
		ObstacleMinWidth:   100,
		ObstacleWidthRatio: 0.7,
		TraversalDuration:  5 * time.Second,
		PulseMin:           0.8,
		PulseMax:           1.2,
		PulseHalfPeriod:    1500 * time.Millisecond,

		SafeRadius: 150,
		EdgeMargin: 150,

		EarthSize:       200,
		EarthSpinPeriod: 2 * time.Second,
		ScaleMin:        0.5,
		ScaleMax:        2.5,
		ScaleUpFactor:   1.1,
		ScaleDownFactor: 0.9,
	}
}

// Validate rejects rule sets that would stall the scheduler or make the scale
// clamp meaningless.
func (r Rules) Validate() error {
	switch {
	case r.HitLimit <= 0:
		return fmt.Errorf("hit_limit must be positive, got %d", r.HitLimit)
	case r.SpawnIntervalMin <= 0 || r.SpawnIntervalMax < r.SpawnIntervalMin:
		return fmt.Errorf("spawn interval range [%s, %s] is invalid", r.SpawnIntervalMin, r.SpawnIntervalMax)
	case r.ObstacleHeight <= 0 || r.ObstacleMinWidth <= 0:
		return fmt.Errorf("obstacle size %gx%g is invalid", r.ObstacleMinWidth, r.ObstacleHeight)
	case r.ObstacleWidthRatio <= 0 || r.ObstacleWidthRatio > 1:
		return fmt.Errorf("obstacle_width_ratio must be in (0, 1], got %g", r.ObstacleWidthRatio)
	case r.TraversalDuration <= 0:
		return fmt.Errorf("traversal_duration must be positive, got %s", r.TraversalDuration)
	case r.PulseMin <= 0 || r.PulseMax < r.PulseMin || r.PulseHalfPeriod <= 0:
		return fmt.Errorf("pulse [%g, %g] over %s is invalid", r.PulseMin, r.PulseMax, r.PulseHalfPeriod)
	case r.SafeRadius < 0 || r.EdgeMargin < 0:
		return fmt.Errorf("safe_radius and edge_margin must not be negative")
	case r.EarthSize <= 0 || r.EarthSpinPeriod <= 0:
		return fmt.Errorf("earth size %g spinning every %s is invalid", r.EarthSize, r.EarthSpinPeriod)
	case r.ScaleMin <= 0 || r.ScaleMax < r.ScaleMin || r.ScaleMin > 1 || r.ScaleMax < 1:
		return fmt.Errorf("scale bounds [%g, %g] must contain 1", r.ScaleMin, r.ScaleMax)
	case r.ScaleUpFactor <= 1 || r.ScaleDownFactor <= 0 || r.ScaleDownFactor >= 1:
		return fmt.Errorf("scale factors up=%g down=%g are invalid", r.ScaleUpFactor, r.ScaleDownFactor)
	}
	return nil
}

// maxObstacleWidth is the upper end of the spawn width range for a screen.
func (r Rules) maxObstacleWidth(screenWidth float64) float64 {
	return max(r.ObstacleMinWidth, r.ObstacleWidthRatio*screenWidth)
}
