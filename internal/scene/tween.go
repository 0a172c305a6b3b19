package scene

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func seconds(d time.Duration) float32 { return float32(d.Seconds()) }

// forever repeats the tweens in order until the owner drops the sequence.
func forever(tweens ...*gween.Tween) *gween.Sequence {
	seq := gween.NewSequence(tweens...)
	seq.SetLoop(-1)
	return seq
}

// spinning turns a full circle every period at constant speed.
func spinning(period time.Duration) *gween.Sequence {
	return forever(gween.New(0, 2*math.Pi, seconds(period), ease.Linear))
}

// pulsing traces one sine period around the middle of [lo, hi]: up to hi, down
// to lo and back, with half a cycle taking half.
func pulsing(lo, hi float64, half time.Duration) *gween.Sequence {
	mid := float32((lo + hi) / 2)
	quarter := seconds(half) / 2
	return forever(
		gween.New(mid, float32(hi), quarter, ease.OutSine),
		gween.New(float32(hi), float32(lo), seconds(half), ease.InOutSine),
		gween.New(float32(lo), mid, quarter, ease.InSine),
	)
}
