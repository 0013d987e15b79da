package cpu

import (
	"github.com/born-ml/metrics/internal/tensor"
)

// Float64 vectorized operations (same-shape fast path).

func addVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// Float64 broadcasting operations.

func addBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] + b[ib]
	}
}

func subBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] - b[ib]
	}
}

func mulBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] * b[ib]
	}
}

func divBroadcastFloat64(dst, a, b []float64, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] / b[ib]
	}
}
