// Package signal generates deterministic complex test signals.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		g.sampleRate = sampleRate
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 48000,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Tone generates a complex exponential exp(j*2*pi*freq*t).
//
// freqHz may be negative; complex tones carry sign information that a real
// sine does not.
func (g *Generator) Tone(freqHz, amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", g.sampleRate)
	}

	out := make([]complex128, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		phase := step * float64(i)
		out[i] = complex(amplitude*math.Cos(phase), amplitude*math.Sin(phase))
	}
	return out, nil
}

// WhiteNoise generates deterministic complex white noise with independent
// real and imaginary parts in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]complex128, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = complex(
			(rng.Float64()*2-1)*amplitude,
			(rng.Float64()*2-1)*amplitude,
		)
	}
	return out, nil
}

// Constant generates a constant complex level, a zero-frequency tone.
func Constant(value complex128, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("constant samples must be > 0: %d", samples)
	}

	out := make([]complex128, samples)
	for i := range out {
		out[i] = value
	}
	return out, nil
}
