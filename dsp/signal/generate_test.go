package signal

import (
	"math"
	"testing"
)

func TestTone(t *testing.T) {
	gen := NewGenerator(WithSampleRate(8))

	tone, err := gen.Tone(1, 2, 8)
	if err != nil {
		t.Fatalf("Tone error: %v", err)
	}
	if len(tone) != 8 {
		t.Fatalf("length=%d want=8", len(tone))
	}

	// One cycle per 8 samples: sample 2 sits a quarter turn in.
	if math.Abs(real(tone[2])) > 1e-12 || math.Abs(imag(tone[2])-2) > 1e-12 {
		t.Fatalf("tone[2]=%v want=2i", tone[2])
	}
	if math.Abs(real(tone[0])-2) > 1e-12 || math.Abs(imag(tone[0])) > 1e-12 {
		t.Fatalf("tone[0]=%v want=2", tone[0])
	}
}

func TestToneNegativeFrequency(t *testing.T) {
	gen := NewGenerator(WithSampleRate(8))

	tone, err := gen.Tone(-1, 1, 4)
	if err != nil {
		t.Fatalf("Tone error: %v", err)
	}

	// Negative frequency rotates the other way.
	if math.Abs(imag(tone[1])+math.Sqrt2/2) > 1e-12 {
		t.Fatalf("tone[1]=%v want negative imaginary part", tone[1])
	}
}

func TestToneValidation(t *testing.T) {
	gen := NewGenerator()
	if _, err := gen.Tone(100, 1, 0); err == nil {
		t.Fatalf("expected error for zero samples")
	}

	bad := NewGenerator(WithSampleRate(0))
	if _, err := bad.Tone(100, 1, 4); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise error: %v", err)
	}
	b, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise[%d] differs for identical seeds: %v != %v", i, a[i], b[i])
		}
	}

	for i, v := range a {
		if math.Abs(real(v)) > 1 || math.Abs(imag(v)) > 1 {
			t.Fatalf("noise[%d]=%v outside amplitude bound", i, v)
		}
	}
}

func TestWhiteNoiseValidation(t *testing.T) {
	gen := NewGenerator()
	if _, err := gen.WhiteNoise(-1, 4); err == nil {
		t.Fatalf("expected error for negative amplitude")
	}
	if _, err := gen.WhiteNoise(1, 0); err == nil {
		t.Fatalf("expected error for zero samples")
	}
}

func TestConstant(t *testing.T) {
	out, err := Constant(2+1i, 3)
	if err != nil {
		t.Fatalf("Constant error: %v", err)
	}
	for i, v := range out {
		if v != 2+1i {
			t.Fatalf("out[%d]=%v want=2+1i", i, v)
		}
	}

	if _, err := Constant(1, 0); err == nil {
		t.Fatalf("expected error for zero samples")
	}
}
