// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/metrics/backend/cpu"
	internalcpu "github.com/born-ml/metrics/internal/backend/cpu"
	"github.com/born-ml/metrics/tensor"
)

// TestBackendInterface verifies that the CPU backend satisfies the public
// Backend alias.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*internalcpu.CPUBackend)(nil)
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

// TestPublicAPI exercises the aliased creation and manipulation surface.
func TestPublicAPI(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if x.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", x.DType())
	}
	if x.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", x.Device())
	}

	y := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	sum := x.Add(y)
	for i, want := range []float32{2, 3, 4, 5} {
		if got := sum.Data()[i]; got != want {
			t.Errorf("Add[%d] = %v, want %v", i, got, want)
		}
	}

	joined := tensor.Cat([]*tensor.Tensor[float32, *cpu.Backend]{x, y}, 0)
	if !joined.Shape().Equal(tensor.Shape{4, 2}) {
		t.Errorf("Cat shape = %v, want [4 2]", joined.Shape())
	}
}

// TestRandomCreation verifies the random constructors produce tensors of
// the requested shape with plausible values.
func TestRandomCreation(t *testing.T) {
	backend := cpu.New()

	u := tensor.Rand[float32](tensor.Shape{8, 8}, backend)
	for i, v := range u.Data() {
		if v < 0 || v >= 1 {
			t.Errorf("Rand[%d] = %v, want value in [0, 1)", i, v)
		}
	}

	n := tensor.Randn[float64](tensor.Shape{64}, backend)
	if !n.Shape().Equal(tensor.Shape{64}) {
		t.Fatalf("Randn shape = %v, want [64]", n.Shape())
	}
	// Standard normal samples essentially never exceed |10|.
	for i, v := range n.Data() {
		if v < -10 || v > 10 {
			t.Errorf("Randn[%d] = %v, implausible for N(0, 1)", i, v)
		}
	}
}

// TestBroadcastShapesAlias verifies the re-exported broadcasting helper.
func TestBroadcastShapesAlias(t *testing.T) {
	out, stretched, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{1, 4})
	if err != nil {
		t.Fatalf("BroadcastShapes failed: %v", err)
	}
	if !out.Equal(tensor.Shape{3, 4}) {
		t.Errorf("broadcast shape = %v, want [3 4]", out)
	}
	if !stretched {
		t.Error("expected stretched = true")
	}
}
