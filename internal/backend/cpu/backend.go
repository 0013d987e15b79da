// Package cpu implements the pure Go CPU backend for the metrics tensor engine.
package cpu

import (
	"fmt"

	"github.com/born-ml/metrics/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// Unlike a training engine, the backend never reuses operand buffers:
// metric calls must be referentially transparent, so every operation
// allocates a fresh result and leaves its inputs untouched.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, addVectorizedFloat32, addVectorizedFloat64,
		addBroadcastFloat32, addBroadcastFloat64)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, subVectorizedFloat32, subVectorizedFloat64,
		subBroadcastFloat32, subBroadcastFloat64)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, mulVectorizedFloat32, mulVectorizedFloat64,
		mulBroadcastFloat32, mulBroadcastFloat64)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b, divVectorizedFloat32, divVectorizedFloat64,
		divBroadcastFloat32, divBroadcastFloat64)
}

type vectorizedFn[F any] func(dst, a, b []F)

type broadcastFn[F any] func(dst, a, b []F, aShape, bShape, outShape tensor.Shape)

// binaryOp dispatches an element-wise binary operation over the supported
// float dtypes, choosing the vectorized fast path when no broadcasting is
// required.
func (cpu *CPUBackend) binaryOp(
	name string,
	a, b *tensor.RawTensor,
	vec32 vectorizedFn[float32], vec64 vectorizedFn[float64],
	bcast32 broadcastFn[float32], bcast64 broadcastFn[float64],
) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if !needsBroadcast {
			vec32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
		} else {
			bcast32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape)
		}
	case tensor.Float64:
		if !needsBroadcast {
			vec64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		} else {
			bcast64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, a.DType()))
	}

	return result
}

// Reshape returns a tensor with the same data but different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}
