package tensor

import (
	"math"
	"testing"
)

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, x.Shape(), "FromSlice")
	if x.DType() != Float32 {
		t.Errorf("expected Float32, got %s", x.DType())
	}
	for i, want := range []float32{1, 2, 3, 4, 5, 6} {
		if got := x.Data()[i]; got != want {
			t.Errorf("data[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestFromSlice_WrongElementCount(t *testing.T) {
	backend := NewMockBackend()

	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, backend)
	if err == nil {
		t.Error("expected error for mismatched element count")
	}
}

func TestAt(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if got := x.At(0, 0); got != 1 {
		t.Errorf("At(0,0): expected 1, got %v", got)
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1,2): expected 6, got %v", got)
	}
}

func TestItem(t *testing.T) {
	backend := NewMockBackend()

	s := Scalar[float32](3.5, backend)
	assertEqualShape(t, Shape{}, s.Shape(), "Scalar")
	if got := s.Item(); got != 3.5 {
		t.Errorf("Item: expected 3.5, got %v", got)
	}
}

func TestFlatten(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	flat := x.Flatten()
	assertEqualShape(t, Shape{4}, flat.Shape(), "Flatten")
	for i, want := range []float32{1, 2, 3, 4} {
		if got := flat.Data()[i]; got != want {
			t.Errorf("flat[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 2}, Shape{2}, backend)
	y := x.Clone()
	y.Data()[0] = 100

	if got := x.Data()[0]; got != 1 {
		t.Errorf("clone mutation leaked into original: got %v", got)
	}
}

func TestAdd_Broadcast(t *testing.T) {
	backend := NewMockBackend()

	a, _ := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	b, _ := FromSlice([]float32{10, 20, 30}, Shape{3}, backend)

	c := a.Add(b)
	assertEqualShape(t, Shape{2, 3}, c.Shape(), "broadcast Add")
	expected := []float32{11, 22, 33, 14, 25, 36}
	for i, want := range expected {
		if got := c.Data()[i]; got != want {
			t.Errorf("sum[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestMeanSqrtChain(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 4, 9, 2}, Shape{4}, backend)
	got := x.Mean().Sqrt().Item()
	if math.Abs(float64(got)-2) > 1e-6 {
		t.Errorf("expected 2, got %v", got)
	}
}

func TestCatChunk_Roundtrip(t *testing.T) {
	backend := NewMockBackend()

	a, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{5, 6, 7, 8}, Shape{2, 2}, backend)

	joined := Cat([]*Tensor[float32, *MockBackend]{a, b}, 0)
	assertEqualShape(t, Shape{4, 2}, joined.Shape(), "Cat")

	parts := joined.Chunk(2, 0)
	if len(parts) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(parts))
	}
	for i, want := range a.Data() {
		if got := parts[0].Data()[i]; got != want {
			t.Errorf("chunk 0 [%d]: expected %v, got %v", i, want, got)
		}
	}
	for i, want := range b.Data() {
		if got := parts[1].Data()[i]; got != want {
			t.Errorf("chunk 1 [%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestOnesFull(t *testing.T) {
	backend := NewMockBackend()

	ones := Ones[float32](Shape{2, 2}, backend)
	for i, v := range ones.Data() {
		if v != 1 {
			t.Errorf("ones[%d]: expected 1, got %v", i, v)
		}
	}

	full := Full[float32](Shape{3}, 2.5, backend)
	for i, v := range full.Data() {
		if v != 2.5 {
			t.Errorf("full[%d]: expected 2.5, got %v", i, v)
		}
	}
}
