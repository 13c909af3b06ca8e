package utils

import "testing"

func TestClampFloat64(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"below range", -5, 0, 100, 0},
		{"above range", 150, 0, 100, 100},
		{"inside range", 42.5, 0, 100, 42.5},
		{"at lower bound", 0, 0, 100, 0},
		{"at upper bound", 100, 0, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampFloat64(tt.value, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampFloat64(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(10, 4); got != 2.5 {
		t.Fatalf("Ratio(10, 4) = %v, want 2.5", got)
	}
	if got := Ratio(10, 0); got != 0 {
		t.Fatalf("Ratio(10, 0) = %v, want 0", got)
	}
}

func TestMaxSlice(t *testing.T) {
	if got := MaxSlice(nil); got != 0 {
		t.Fatalf("MaxSlice(nil) = %v, want 0", got)
	}
	if got := MaxSlice([]float64{0.3, 0.9, 0.1}); got != 0.9 {
		t.Fatalf("MaxSlice = %v, want 0.9", got)
	}
}

func TestRound(t *testing.T) {
	if got := Round(3.14159, 2); got != 3.14 {
		t.Fatalf("Round(3.14159, 2) = %v, want 3.14", got)
	}
	if got := Round(2.675, 0); got != 3 {
		t.Fatalf("Round(2.675, 0) = %v, want 3", got)
	}
}
