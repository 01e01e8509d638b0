// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"full scale positive", 1.0, 32767},
		{"full scale negative", -1.0, -32767},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16383},
		{"quarter", 0.25, 8191},
		{"near silence", 0.001, 32},
		{"clamp above", 1.5, 32767},
		{"clamp below", -1.5, -32767},
		{"clamp far above", 100.0, 32767},
		{"clamp far below", -100.0, -32767},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			// ±1 slack for rounding, widened so the bound cannot wrap
			// at the int16 extremes
			if int(got) < int(tt.want)-1 || int(got) > int(tt.want)+1 {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16_Symmetry(t *testing.T) {
	t.Parallel()

	for _, val := range []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0} {
		pos := Float32ToInt16(val)
		neg := Float32ToInt16(-val)

		if math.Abs(float64(pos+neg)) > 1 {
			t.Errorf("conversion not symmetric: Float32ToInt16(%v) = %v, Float32ToInt16(-%v) = %v",
				val, pos, val, neg)
		}
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("not monotonic at %v: got %v after %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16
	input := float32(0.5)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		result = Float32ToInt16(input)
	}

	_ = result
}

// BenchmarkFloat32ToInt16Buffer converts a render-sized chunk per iteration.
func BenchmarkFloat32ToInt16Buffer(b *testing.B) {
	floatBuf := make([]float32, 4096)
	pcmBuf := make([]int16, 4096)
	for i := range floatBuf {
		floatBuf[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for j := range floatBuf {
			pcmBuf[j] = Float32ToInt16(floatBuf[j])
		}
	}
}
