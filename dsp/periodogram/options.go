package periodogram

import "github.com/cwbudde/algo-spectral/dsp/window"

// Config defines configuration for a periodogram estimator.
type Config struct {
	// FFTSize is the number of frequency bins. Must be at least 2.
	FFTSize int
	// WindowSize is the number of time-domain samples per analysis frame,
	// in [1, FFTSize]. Samples beyond WindowSize are zero-padded before
	// the transform.
	WindowSize int
	// HopDelay is the number of new samples between successive frames.
	// Must be at least 1. Values below WindowSize overlap frames; values
	// above it skip samples.
	HopDelay int
	// Smoothing is the exponential-averaging factor alpha in (0, 1].
	// 1 disables smoothing: each frame fully replaces the estimate.
	Smoothing float64
	// Window selects the taper applied to each frame.
	Window window.Type
}

// Option mutates a Config before validation.
type Option func(*Config)

// DefaultConfig returns the conventional parameterization for a given FFT
// size: quarter-size analysis window, eighth-size hop, Hamming taper.
func DefaultConfig(fftSize int, smoothing float64) Config {
	return Config{
		FFTSize:    fftSize,
		WindowSize: fftSize / 4,
		HopDelay:   fftSize / 8,
		Smoothing:  smoothing,
		Window:     window.TypeHamming,
	}
}

// WithWindowSize sets the analysis window size.
func WithWindowSize(size int) Option {
	return func(cfg *Config) {
		cfg.WindowSize = size
	}
}

// WithHopDelay sets the number of samples between frames.
func WithHopDelay(delay int) Option {
	return func(cfg *Config) {
		cfg.HopDelay = delay
	}
}

// WithWindow sets the taper window type.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}
