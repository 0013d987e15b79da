package cpu

import (
	"github.com/born-ml/metrics/internal/tensor"
)

// Float32 vectorized operations (same-shape fast path).

func addVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divVectorizedFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// Float32 broadcasting operations.

func addBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] + b[ib]
	}
}

func subBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] - b[ib]
	}
}

func mulBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] * b[ib]
	}
}

func divBroadcastFloat32(dst, a, b []float32, aShape, bShape, outShape tensor.Shape) {
	ix := newBroadcastIndexer(aShape, bShape, outShape)
	for i := range dst {
		ia, ib := ix.sourceIndices(i)
		dst[i] = a[ia] / b[ib]
	}
}
