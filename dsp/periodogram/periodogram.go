package periodogram

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-spectral/dsp/ringbuf"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// Estimator accumulates a smoothed PSD estimate from a complex sample
// stream. All buffers are allocated once at construction and reused across
// frames; the steady-state Push path does not allocate.
type Estimator struct {
	cfg Config

	buffer *ringbuf.Window
	taper  []float64

	plan     *algofft.Plan[complex128]
	frameIn  []complex128 // tapered, zero-padded frame (FFT input, reused)
	frameOut []complex128 // FFT output, overwritten each frame
	mag      []float64    // per-frame magnitude scratch
	psd      []float64    // accumulated magnitude estimate
	db       []float64    // decibel scratch for Execute

	frames  int // frames accumulated; 0 means the estimate is undefined
	pending int // samples pushed since the last frame trigger
}

// New creates an estimator with the conventional defaults for fftSize
// (see [DefaultConfig]), modified by opts.
func New(fftSize int, smoothing float64, opts ...Option) (*Estimator, error) {
	cfg := DefaultConfig(fftSize, smoothing)
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return NewFromConfig(cfg)
}

// NewAdvanced creates an estimator with explicit window size and hop delay.
func NewAdvanced(fftSize, windowSize, hopDelay int, smoothing float64) (*Estimator, error) {
	return New(fftSize, smoothing, WithWindowSize(windowSize), WithHopDelay(hopDelay))
}

// NewFromConfig creates an estimator from a fully specified configuration.
func NewFromConfig(cfg Config) (*Estimator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("periodogram: failed to create FFT plan: %w", err)
	}

	buffer, err := ringbuf.New(cfg.WindowSize)
	if err != nil {
		return nil, err
	}

	// Taper scaled by the window length so framing does not bias the gain.
	taper := window.Generate(cfg.Window, cfg.WindowSize)
	scale := 1 / float64(cfg.WindowSize)
	for i := range taper {
		taper[i] *= scale
	}

	return &Estimator{
		cfg:      cfg,
		buffer:   buffer,
		taper:    taper,
		plan:     plan,
		frameIn:  make([]complex128, cfg.FFTSize),
		frameOut: make([]complex128, cfg.FFTSize),
		mag:      make([]float64, cfg.FFTSize),
		psd:      make([]float64, cfg.FFTSize),
		db:       make([]float64, cfg.FFTSize),
	}, nil
}

// FFTSize returns the number of frequency bins.
func (e *Estimator) FFTSize() int {
	return e.cfg.FFTSize
}

// WindowSize returns the analysis window size.
func (e *Estimator) WindowSize() int {
	return e.cfg.WindowSize
}

// HopDelay returns the number of samples between frames.
func (e *Estimator) HopDelay() int {
	return e.cfg.HopDelay
}

// Smoothing returns the exponential-averaging factor.
func (e *Estimator) Smoothing() float64 {
	return e.cfg.Smoothing
}

// Frames returns the number of frames accumulated since construction or the
// last Reset.
func (e *Estimator) Frames() int {
	return e.frames
}

// Push streams samples into the estimator. Every HopDelay samples one frame
// is analyzed and folded into the running estimate; at most one frame is
// triggered per HopDelay pushed samples regardless of batch size.
func (e *Estimator) Push(samples []complex128) {
	for _, s := range samples {
		e.buffer.Push(s)

		e.pending++
		if e.pending == e.cfg.HopDelay {
			e.pending = 0
			e.accumulateFrame()
		}
	}
}

// Execute writes the current estimate into dst as decibel values, with the
// zero-frequency bin centered at index FFTSize/2. dst must have length
// FFTSize. Before the first frame the estimate is undefined and dst is
// filled with zeros.
func (e *Estimator) Execute(dst []float64) error {
	if len(dst) != e.cfg.FFTSize {
		return fmt.Errorf("periodogram output length mismatch: got %d want %d", len(dst), e.cfg.FFTSize)
	}

	if e.frames == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return nil
	}

	for i, v := range e.psd {
		e.db[i] = spectrum.ToDB(v)
	}
	return spectrum.FFTShiftTo(dst, e.db)
}

// Reset clears buffered samples and accumulated state. The configuration is
// unchanged; the next frame after Reset re-initializes the estimate.
func (e *Estimator) Reset() {
	e.buffer.Clear()
	e.frames = 0
	e.pending = 0
}

func (e *Estimator) accumulateFrame() {
	// Read the window oldest-first into the head of the FFT input and
	// taper in place. The tail beyond WindowSize stays zero for padding.
	head := e.frameIn[:e.cfg.WindowSize]
	if err := e.buffer.ReadTo(head); err != nil {
		return
	}
	for k := range head {
		head[k] *= complex(e.taper[k], 0)
	}

	if err := e.plan.Forward(e.frameOut, e.frameIn); err != nil {
		return
	}

	spectrum.MagnitudeTo(e.mag, e.frameOut)

	if e.frames == 0 {
		// First frame: no history to blend.
		copy(e.psd, e.mag)
	} else {
		alpha := e.cfg.Smoothing
		for j, m := range e.mag {
			e.psd[j] = (1-alpha)*e.psd[j] + alpha*m
		}
	}

	e.frames++
}
