// Package periodogram implements a streaming spectral periodogram: an
// estimate of a signal's power spectral density built incrementally from an
// unbounded complex sample stream.
//
// Samples are pushed one batch at a time into a fixed sliding window. Every
// hopDelay samples the window contents are tapered, zero-padded to the FFT
// size, transformed, and the per-bin magnitude is blended into a running
// estimate with a single-pole exponential moving average. The first frame
// initializes the estimate directly; later frames blend with factor alpha.
// Memory stays O(fftSize) regardless of stream length and an estimate is
// available after the first frame.
//
// The average is taken over linear magnitude, not power. Welch's method
// conventionally averages power; this estimator deliberately keeps the
// magnitude-domain average for output compatibility with its reference
// behavior.
//
// An Estimator is not safe for concurrent use. Callers that share one
// instance across goroutines must serialize Push, Execute, and Reset
// externally.
package periodogram
