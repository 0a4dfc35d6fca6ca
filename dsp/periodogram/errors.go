package periodogram

import "fmt"

// validate reports the first configuration violation. Construction fails
// closed: nothing is allocated for an invalid configuration.
func (cfg Config) validate() error {
	if cfg.FFTSize < 2 {
		return fmt.Errorf("periodogram fft size must be at least 2: %d", cfg.FFTSize)
	}
	if cfg.WindowSize < 1 {
		return fmt.Errorf("periodogram window size must be at least 1: %d", cfg.WindowSize)
	}
	if cfg.WindowSize > cfg.FFTSize {
		return fmt.Errorf("periodogram window size cannot exceed fft size: %d > %d", cfg.WindowSize, cfg.FFTSize)
	}
	if cfg.HopDelay < 1 {
		return fmt.Errorf("periodogram hop delay must be at least 1: %d", cfg.HopDelay)
	}
	if cfg.Smoothing <= 0 || cfg.Smoothing > 1 {
		return fmt.Errorf("periodogram smoothing factor must be in (0,1]: %f", cfg.Smoothing)
	}
	return nil
}
