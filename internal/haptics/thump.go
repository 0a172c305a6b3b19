package haptics

import "math"

const SampleRate = 44100

// thump renders a short, low, fast-decaying sine as 16-bit little-endian stereo
// PCM, the format ebiten/audio players expect. On devices without a vibration
// motor it stands in for the pulse.
func thump(d float64, freq float64, gain float64) []byte {
	n := int(d * SampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := envelope(p, 0.05)
		// Pitch drops a little over the pulse, like a knock.
		f := freq * (1 - 0.35*p)
		s := math.Sin(2*math.Pi*f*t) * env * gain
		putStereo16(buf, i, s)
	}
	return buf
}

// envelope ramps up over the attack fraction and decays exponentially to zero
// at p == 1.
func envelope(p, attack float64) float64 {
	if p < attack {
		return p / attack
	}
	q := (p - attack) / (1 - attack)
	return math.Exp(-5*q) * (1 - q)
}

func putStereo16(buf []byte, i int, sample float64) {
	sample = math.Max(-1, math.Min(1, sample))
	v := int16(sample * math.MaxInt16)
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}
