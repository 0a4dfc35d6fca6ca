package spectrum

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// FloorDB is the decibel value reported for non-positive magnitudes, where
// 20*log10 is undefined. It sits far below any representable signal level.
const FloorDB = -300.0

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// SIMD-optimized implementations are used when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	MagnitudeTo(out, in)
	return out
}

// MagnitudeTo computes |X[k]| for each bin into dst without allocating.
//
// This is the hot path for streaming analyzers that reuse a magnitude buffer
// across frames. dst and in must have the same length.
func MagnitudeTo(dst []float64, in []complex128) {
	if len(dst) != len(in) {
		return
	}

	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// ToDB converts a linear magnitude to decibels (20*log10).
// Non-positive values map to [FloorDB].
func ToDB(v float64) float64 {
	if v <= 0 {
		return FloorDB
	}
	return 20 * math.Log10(v)
}

// FFTShiftTo writes src circularly shifted by half its length into dst, so
// that output index 0 corresponds to the most negative frequency and the
// zero-frequency bin lands at index len/2.
//
// dst and src must have the same length and must not alias.
func FFTShiftTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("fftshift length mismatch: got %d want %d", len(dst), len(src))
	}

	half := len(src) / 2
	for i := range src {
		dst[i] = src[(i+half)%len(src)]
	}
	return nil
}
