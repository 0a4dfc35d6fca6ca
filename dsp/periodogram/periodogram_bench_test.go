package periodogram

import (
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/signal"
)

func BenchmarkPush(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"1K", 1024},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			est, err := New(testCase.size, 0.1)
			if err != nil {
				b.Fatalf("New error: %v", err)
			}

			gen := signal.NewGenerator(signal.WithSeed(1))
			block, err := gen.WhiteNoise(1, est.HopDelay())
			if err != nil {
				b.Fatalf("WhiteNoise error: %v", err)
			}

			b.SetBytes(int64(len(block) * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				est.Push(block)
			}
		})
	}
}

func BenchmarkExecute(b *testing.B) {
	est, err := New(1024, 0.1)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}

	gen := signal.NewGenerator(signal.WithSeed(1))
	samples, err := gen.WhiteNoise(1, 4096)
	if err != nil {
		b.Fatalf("WhiteNoise error: %v", err)
	}
	est.Push(samples)

	out := make([]float64, est.FFTSize())
	b.SetBytes(int64(len(out) * 8))
	b.ResetTimer()

	for range b.N {
		if err := est.Execute(out); err != nil {
			b.Fatalf("Execute error: %v", err)
		}
	}
}
