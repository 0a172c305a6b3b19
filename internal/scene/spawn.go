package scene

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// spawner draws the random parts of a new obstacle.
type spawner struct {
	rules         Rules
	rng           *rand.Rand
	width, height float64 // screen
}

func (s *spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// interval until the next spawn, uniform in the configured range.
func (s *spawner) interval() time.Duration {
	lo, hi := s.rules.SpawnIntervalMin, s.rules.SpawnIntervalMax
	if hi == lo {
		return lo
	}
	return lo + time.Duration(s.rng.Int63n(int64(hi-lo)+1))
}

func (s *spawner) obstacleWidth() float64 {
	return s.uniform(s.rules.ObstacleMinWidth, s.rules.maxObstacleWidth(s.width))
}

// lane picks a y in [margin, height-margin] at least SafeRadius away from
// earthY. The valid region is at most two intervals and is sampled directly.
func (s *spawner) lane(earthY float64) (float64, error) {
	lo, hi := s.rules.EdgeMargin, s.height-s.rules.EdgeMargin
	if hi <= lo {
		return 0, ErrNoSpawnLane
	}
	r := s.rules.SafeRadius

	belowHi := math.Min(hi, earthY-r)
	aboveLo := math.Max(lo, earthY+r)
	below := math.Max(0, belowHi-lo)
	above := math.Max(0, hi-aboveLo)

	total := below + above
	if total <= 0 {
		return 0, ErrNoSpawnLane
	}
	u := s.rng.Float64() * total
	if u < below {
		return lo + u, nil
	}
	return aboveLo + (u - below), nil
}

// pastel colour: every channel in [0.5, 1.0], opaque.
func (s *spawner) pastel() color.RGBA {
	ch := func() uint8 {
		return uint8(math.Round(s.uniform(0.5, 1) * 255))
	}
	return color.RGBA{R: ch(), G: ch(), B: ch(), A: 0xff}
}

// sample places an obstacle just off the right edge of the screen.
func (s *spawner) sample(earthY float64) (ObstacleSpec, error) {
	y, err := s.lane(earthY)
	if err != nil {
		return ObstacleSpec{}, err
	}
	w := s.obstacleWidth()
	return ObstacleSpec{
		X:     s.width + w/2,
		Y:     y,
		Width: w,
		Color: s.pastel(),
	}, nil
}
