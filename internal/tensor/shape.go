package tensor

import "fmt"

// Shape holds the dimensions of a tensor. An empty Shape is a 0-dim
// scalar.
type Shape []int

// NumElements returns the number of elements a tensor of this shape
// holds. A scalar shape holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate reports an error if any dimension is not positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 1 {
			return fmt.Errorf("shape %v: dimension %d must be positive, got %d", s, i, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if other[i] != dim {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// ComputeStrides returns row-major strides: stride[i] is the flat
// distance between consecutive indices along dimension i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	stride := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s[i]
	}
	return strides
}

// BroadcastShapes applies NumPy broadcasting rules to a pair of shapes.
//
// Dimensions are aligned from the right; a dimension that is missing or
// has size 1 stretches to match its partner. Returns the broadcast
// shape, whether any stretching is required, and an error if some
// dimension pair is incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	n := max(len(a), len(b))
	out := make(Shape, n)
	stretched := false

	for i := n - 1; i >= 0; i-- {
		da, db := 1, 1
		if j := i - (n - len(a)); j >= 0 {
			da = a[j]
		}
		if j := i - (n - len(b)); j >= 0 {
			db = b[j]
		}

		switch {
		case da == db:
			out[i] = da
		case da == 1:
			out[i] = db
			stretched = true
		case db == 1:
			out[i] = da
			stretched = true
		default:
			return nil, false, fmt.Errorf("cannot broadcast %v with %v: dimension %d (%d vs %d)",
				a, b, i, da, db)
		}
	}

	return out, stretched, nil
}
