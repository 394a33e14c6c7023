package mathutil

import (
	"math"
	"testing"
)

func TestMinMax(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		wantMin float64
		wantMax float64
	}{
		{"Ordered", 1, 2, 1, 2},
		{"Reversed", 2, 1, 1, 2},
		{"Equal", 3.5, 3.5, 3.5, 3.5},
		{"Negative", -4, 4, -4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Min(tt.a, tt.b); got != tt.wantMin {
				t.Errorf("Min(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.wantMin)
			}
			if got := Max(tt.a, tt.b); got != tt.wantMax {
				t.Errorf("Max(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.wantMax)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		lower    float64
		upper    float64
		expected float64
	}{
		{"Inside range", 50, 5, 100, 50},
		{"Below lower", 2.6, 5, 100, 5},
		{"Above upper", 102.4, 5, 100, 100},
		{"On lower edge", 5, 5, 100, 5},
		{"Unbounded upper", 1e9, 50, math.Inf(1), 1e9},
		{"Crossed bounds prefer lower", 10, 20, 0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, tt.lower, tt.upper); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.val, tt.lower, tt.upper, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float64
		tolerance float64
		expected  bool
	}{
		{"Identical", 1, 1, 1e-6, true},
		{"Tiny difference", 1, 1 + 1e-9, 1e-6, true},
		{"Exactly tolerance is outside", 0, 0.5, 0.5, false},
		{"Far apart", 140.39, 146.88, 1e-6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.a, tt.b, tt.tolerance); got != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.tolerance, got, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Quarter", 25, 100, 25},
		{"Zero total guarded", 10, 0, 0},
		{"Negative value", -5, 200, -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(12.5) {
		t.Errorf("expected 12.5 to be finite")
	}
	if IsFinite(math.NaN()) {
		t.Errorf("expected NaN to be rejected")
	}
	if IsFinite(math.Inf(-1)) {
		t.Errorf("expected -Inf to be rejected")
	}
}
