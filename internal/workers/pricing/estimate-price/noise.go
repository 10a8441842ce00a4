package estimateprice

import (
	"math"
	"math/rand/v2"
	"sync"
)

// NoiseSource perturbs the median so repeated lookups do not return identical figures.
type NoiseSource interface {
	// Noise returns a value in [-amplitude, +amplitude).
	Noise(amplitude float64) float64
}

type randomNoise struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomNoise returns a goroutine-safe uniform source. A zero seed draws from the
// runtime's global generator.
func NewRandomNoise(seed int64) NoiseSource {
	if seed == 0 {
		return &randomNoise{}
	}
	return &randomNoise{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (r *randomNoise) Noise(amplitude float64) float64 {
	var f float64
	if r.rng == nil {
		f = rand.Float64()
	} else {
		r.mu.Lock()
		f = r.rng.Float64()
		r.mu.Unlock()
	}
	return f*2*amplitude - amplitude
}

// FixedNoise always returns its own value, clamped into [-amplitude, +amplitude). A value
// at or above +amplitude becomes the largest float below it. Zero amplitude yields zero.
type FixedNoise float64

func (f FixedNoise) Noise(amplitude float64) float64 {
	if amplitude <= 0 {
		return 0
	}
	v := float64(f)
	if v >= amplitude {
		return math.Nextafter(amplitude, math.Inf(-1))
	}
	if v < -amplitude {
		return -amplitude
	}
	return v
}

// NoNoise is FixedNoise(0).
var NoNoise NoiseSource = FixedNoise(0)
