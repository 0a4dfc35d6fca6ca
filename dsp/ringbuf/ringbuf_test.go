package ringbuf

import "testing"

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatalf("expected error for zero size")
	}
	if _, err := New(-3); err == nil {
		t.Fatalf("expected error for negative size")
	}
}

func TestZeroPrefill(t *testing.T) {
	w, err := New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	w.Push(1)
	w.Push(2i)

	dst := make([]complex128, 4)
	if err := w.ReadTo(dst); err != nil {
		t.Fatalf("ReadTo error: %v", err)
	}

	want := []complex128{0, 0, 1, 2i}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]=%v want=%v", i, dst[i], want[i])
		}
	}
}

func TestWraparoundOrder(t *testing.T) {
	w, err := New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for i := 1; i <= 6; i++ {
		w.Push(complex(float64(i), 0))
	}

	dst := make([]complex128, 4)
	if err := w.ReadTo(dst); err != nil {
		t.Fatalf("ReadTo error: %v", err)
	}

	want := []complex128{3, 4, 5, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d]=%v want=%v", i, dst[i], want[i])
		}
	}
}

func TestReadToLengthMismatch(t *testing.T) {
	w, err := New(4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if err := w.ReadTo(make([]complex128, 3)); err == nil {
		t.Fatalf("expected error for short destination")
	}
}

func TestClear(t *testing.T) {
	w, err := New(3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	w.Push(1)
	w.Push(2)
	w.Clear()

	dst := make([]complex128, 3)
	if err := w.ReadTo(dst); err != nil {
		t.Fatalf("ReadTo error: %v", err)
	}
	for i, v := range dst {
		if v != 0 {
			t.Fatalf("dst[%d]=%v want=0 after Clear", i, v)
		}
	}

	// Write position rewinds too: the next push is the oldest slot again.
	w.Push(9)
	if err := w.ReadTo(dst); err != nil {
		t.Fatalf("ReadTo error: %v", err)
	}
	if dst[2] != 9 {
		t.Fatalf("dst[2]=%v want=9 after Clear+Push", dst[2])
	}
}

func TestCap(t *testing.T) {
	w, err := New(7)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if w.Cap() != 7 {
		t.Fatalf("Cap=%d want=7", w.Cap())
	}
}
