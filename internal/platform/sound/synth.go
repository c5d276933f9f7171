// Package sound synthesises the game's two sound effects and plays them
// through oto for terminal sessions.
package sound

import (
	"encoding/binary"
	"math"
)

// SampleRate is the output rate for every effect.
const SampleRate = 44100

// Effect is a sine sweep with an exponential gain envelope.
type Effect struct {
	StartHz, EndHz float64
	Sweep          float64 // seconds for the frequency ramp
	StartGain      float64
	EndGain        float64
	Duration       float64 // seconds, also the gain ramp length
}

// Bounce is the short rising chirp played on every flap.
var Bounce = Effect{
	StartHz:   220,
	EndHz:     440,
	Sweep:     0.1,
	StartGain: 0.3,
	EndGain:   0.01,
	Duration:  0.2,
}

// GameOver is the falling tone played once when a round ends.
var GameOver = Effect{
	StartHz:   330,
	EndHz:     165,
	Sweep:     0.5,
	StartGain: 0.4,
	EndGain:   0.01,
	Duration:  0.8,
}

// expRamp moves from a to b exponentially over [0, 1] and holds b after.
func expRamp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a * math.Pow(b/a, t)
}

// Synthesize renders the effect as mono samples in [-1, 1].
func Synthesize(e Effect, rate int) []float64 {
	n := int(e.Duration * float64(rate))
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(rate)
		freq := expRamp(e.StartHz, e.EndHz, t/e.Sweep)
		gain := expRamp(e.StartGain, e.EndGain, t/e.Duration)
		out[i] = gain * math.Sin(phase)
		phase += 2 * math.Pi * freq / float64(rate)
	}
	return out
}

// EncodeF32Stereo packs mono samples as little-endian float32 stereo frames.
func EncodeF32Stereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		v := math.Float32bits(float32(s))
		binary.LittleEndian.PutUint32(buf[i*8:], v)
		binary.LittleEndian.PutUint32(buf[i*8+4:], v)
	}
	return buf
}

// EncodeS16Stereo packs mono samples as little-endian signed 16-bit stereo
// frames.
func EncodeS16Stereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}
