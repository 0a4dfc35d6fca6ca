// Package ringbuf provides a fixed-capacity sliding window over a complex
// sample stream. Pushing at capacity evicts the oldest sample; that is the
// normal steady state, not an error.
package ringbuf

import "fmt"

// Window is a circular buffer holding the most recent samples in arrival
// order. Slots that have never been written read as zero.
type Window struct {
	buffer   []complex128
	writePos int
}

// New returns a zero-filled window of fixed capacity.
func New(size int) (*Window, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ringbuf size must be > 0: %d", size)
	}
	return &Window{buffer: make([]complex128, size)}, nil
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return len(w.buffer)
}

// Push writes one sample, evicting the oldest if at capacity.
func (w *Window) Push(sample complex128) {
	w.buffer[w.writePos] = sample
	w.writePos++
	if w.writePos >= len(w.buffer) {
		w.writePos = 0
	}
}

// ReadTo copies the window contents into dst, oldest sample first.
// dst must have length Cap. No allocation occurs.
func (w *Window) ReadTo(dst []complex128) error {
	if len(dst) != len(w.buffer) {
		return fmt.Errorf("ringbuf read length mismatch: got %d want %d", len(dst), len(w.buffer))
	}
	n := copy(dst, w.buffer[w.writePos:])
	copy(dst[n:], w.buffer[:w.writePos])
	return nil
}

// Clear zeroes the window and rewinds the write position.
func (w *Window) Clear() {
	for i := range w.buffer {
		w.buffer[i] = 0
	}
	w.writePos = 0
}
