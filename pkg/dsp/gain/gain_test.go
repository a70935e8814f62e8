package gain

import (
	"math"
	"testing"
)

func TestDbConversion(t *testing.T) {
	tests := []struct {
		name    string
		linear  float64
		db      float64
		epsilon float64
	}{
		{"Unity gain", 1.0, 0.0, 0.001},
		{"Half amplitude", 0.5, -6.02, 0.01},
		{"Double amplitude", 2.0, 6.02, 0.01},
		{"Send ceiling", 3.98107, 12.0, 0.001},
		{"Send floor", 6.30957e-8, -144.0, 0.001},
		{"Zero amplitude", 0.0, MinDB, 0.001},
		{"Negative amplitude", -1.0, MinDB, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDb := LinearToDb(tt.linear)
			if math.Abs(gotDb-tt.db) > tt.epsilon {
				t.Errorf("LinearToDb(%g) = %f, want %f", tt.linear, gotDb, tt.db)
			}

			if tt.db != MinDB {
				gotLinear := DbToLinear(tt.db)
				if math.Abs(gotLinear-tt.linear) > tt.epsilon {
					t.Errorf("DbToLinear(%f) = %g, want %g", tt.db, gotLinear, tt.linear)
				}
			}
		})
	}
}

func TestDb32Conversion(t *testing.T) {
	linear := float32(0.5)
	expectedDb := float32(-6.02)

	gotDb := LinearToDb32(linear)
	if math.Abs(float64(gotDb-expectedDb)) > 0.01 {
		t.Errorf("LinearToDb32(%f) = %f, want %f", linear, gotDb, expectedDb)
	}

	gotLinear := DbToLinear32(expectedDb)
	if math.Abs(float64(gotLinear-linear)) > 0.01 {
		t.Errorf("DbToLinear32(%f) = %f, want %f", expectedDb, gotLinear, linear)
	}
}

func TestApply(t *testing.T) {
	if got := Apply(0.5, 2.0); got != 1.0 {
		t.Errorf("Apply(0.5, 2.0) = %f, want 1.0", got)
	}
}

func TestApplyBuffer(t *testing.T) {
	buffer := []float32{1.0, 0.5, -0.5, -1.0}
	expected := []float32{0.5, 0.25, -0.25, -0.5}

	ApplyBuffer(buffer, 0.5)

	for i, v := range buffer {
		if v != expected[i] {
			t.Errorf("ApplyBuffer: buffer[%d] = %f, want %f", i, v, expected[i])
		}
	}
}

func TestApplyBufferTo(t *testing.T) {
	src := []float32{1.0, -1.0, 0.25, 0.0}
	dst := make([]float32, 4)

	ApplyBufferTo(src, 2.0, dst)

	expected := []float32{2.0, -2.0, 0.5, 0.0}
	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("ApplyBufferTo: dst[%d] = %f, want %f", i, v, expected[i])
		}
	}

	// Source untouched.
	if src[0] != 1.0 || src[3] != 0.0 {
		t.Error("ApplyBufferTo modified the source buffer")
	}
}

func TestApplyBufferToClampsLengths(t *testing.T) {
	src := []float32{1.0, 1.0, 1.0, 1.0}
	dst := []float32{9, 9}

	ApplyBufferTo(src, 0.5, dst)

	if dst[0] != 0.5 || dst[1] != 0.5 {
		t.Errorf("ApplyBufferTo short dst: got %v, want [0.5 0.5]", dst)
	}

	dst2 := []float32{9, 9, 9, 9}
	ApplyBufferTo(src[:2], 0.5, dst2)
	if dst2[2] != 9 || dst2[3] != 9 {
		t.Errorf("ApplyBufferTo short src wrote past source length: %v", dst2)
	}
}

func BenchmarkApplyBufferTo(b *testing.B) {
	src := make([]float32, 512)
	dst := make([]float32, 512)
	for i := range src {
		src[i] = float32(i) / 512
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ApplyBufferTo(src, 0.708, dst)
	}
}
