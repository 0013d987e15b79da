package cpu

import (
	"testing"

	"github.com/born-ml/metrics/internal/tensor"
)

func TestConv2D_SingleChannel(t *testing.T) {
	backend := New()

	// 3x3 input, 2x2 kernel picking the main diagonal of each window.
	input := newFloat32(t, tensor.Shape{1, 1, 3, 3}, []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	kernel := newFloat32(t, tensor.Shape{1, 1, 2, 2}, []float32{
		1, 0,
		0, 1,
	})

	result := backend.Conv2D(input, kernel, 1, 0, 1)
	if !result.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
		t.Fatalf("expected shape [1 1 2 2], got %v", result.Shape())
	}
	expected := []float32{6, 8, 12, 14}
	for i, want := range expected {
		if got := result.AsFloat32()[i]; got != want {
			t.Errorf("output[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestConv2D_Depthwise(t *testing.T) {
	backend := New()

	// Two channels, groups == channels: each channel convolves with its
	// own 2x2 kernel and never mixes with the other.
	input := newFloat32(t, tensor.Shape{1, 2, 3, 3}, []float32{
		// channel 0
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		// channel 1
		10, 11, 12,
		13, 14, 15,
		16, 17, 18,
	})
	kernel := newFloat32(t, tensor.Shape{2, 1, 2, 2}, []float32{
		// channel 0: box sum
		1, 1,
		1, 1,
		// channel 1: top-left pick
		1, 0,
		0, 0,
	})

	result := backend.Conv2D(input, kernel, 1, 0, 2)
	if !result.Shape().Equal(tensor.Shape{1, 2, 2, 2}) {
		t.Fatalf("expected shape [1 2 2 2], got %v", result.Shape())
	}
	expected := []float32{
		12, 16, 24, 28, // channel 0 window sums
		10, 11, 13, 14, // channel 1 top-left values
	}
	for i, want := range expected {
		if got := result.AsFloat32()[i]; got != want {
			t.Errorf("output[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestConv2D_Padding(t *testing.T) {
	backend := New()

	// 2x2 ones, 3x3 ones kernel, padding 1: every window covers the
	// whole input.
	input := newFloat32(t, tensor.Shape{1, 1, 2, 2}, []float32{1, 1, 1, 1})
	kernel := newFloat32(t, tensor.Shape{1, 1, 3, 3}, []float32{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	})

	result := backend.Conv2D(input, kernel, 1, 1, 1)
	if !result.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
		t.Fatalf("expected shape [1 1 2 2], got %v", result.Shape())
	}
	for i := 0; i < 4; i++ {
		if got := result.AsFloat32()[i]; got != 4 {
			t.Errorf("output[%d]: expected 4, got %v", i, got)
		}
	}
}

func TestConv2D_Stride(t *testing.T) {
	backend := New()

	// 4x4 input, 2x2 box kernel, stride 2: four disjoint windows.
	input := newFloat32(t, tensor.Shape{1, 1, 4, 4}, []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	kernel := newFloat32(t, tensor.Shape{1, 1, 2, 2}, []float32{
		1, 1,
		1, 1,
	})

	result := backend.Conv2D(input, kernel, 2, 0, 1)
	if !result.Shape().Equal(tensor.Shape{1, 1, 2, 2}) {
		t.Fatalf("expected shape [1 1 2 2], got %v", result.Shape())
	}
	expected := []float32{14, 22, 46, 54}
	for i, want := range expected {
		if got := result.AsFloat32()[i]; got != want {
			t.Errorf("output[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestConv2D_Float64(t *testing.T) {
	backend := New()

	input := newFloat64(t, tensor.Shape{1, 1, 2, 2}, []float64{1, 2, 3, 4})
	kernel := newFloat64(t, tensor.Shape{1, 1, 2, 2}, []float64{0.5, 0.5, 0.5, 0.5})

	result := backend.Conv2D(input, kernel, 1, 0, 1)
	if !result.Shape().Equal(tensor.Shape{1, 1, 1, 1}) {
		t.Fatalf("expected shape [1 1 1 1], got %v", result.Shape())
	}
	if got := result.AsFloat64()[0]; got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}
