package cpu

import (
	"testing"

	"github.com/born-ml/metrics/internal/tensor"
)

func TestSum(t *testing.T) {
	backend := New()

	x := newFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})

	result := backend.Sum(x)
	if len(result.Shape()) != 0 {
		t.Fatalf("expected 0-dim scalar, got shape %v", result.Shape())
	}
	if got := result.AsFloat32()[0]; got != 10 {
		t.Errorf("Sum: expected 10, got %v", got)
	}
}

func TestMean(t *testing.T) {
	backend := New()

	x := newFloat64(t, tensor.Shape{4}, []float64{1, 2, 3, 4})

	result := backend.Mean(x)
	if len(result.Shape()) != 0 {
		t.Fatalf("expected 0-dim scalar, got shape %v", result.Shape())
	}
	if got := result.AsFloat64()[0]; got != 2.5 {
		t.Errorf("Mean: expected 2.5, got %v", got)
	}
}

func TestMaxMin(t *testing.T) {
	backend := New()

	x := newFloat32(t, tensor.Shape{5}, []float32{3, -1, 7, 0, 2})

	if got := backend.Max(x).AsFloat32()[0]; got != 7 {
		t.Errorf("Max: expected 7, got %v", got)
	}
	if got := backend.Min(x).AsFloat32()[0]; got != -1 {
		t.Errorf("Min: expected -1, got %v", got)
	}
}
