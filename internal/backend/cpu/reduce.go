package cpu

import (
	"fmt"

	"github.com/born-ml/metrics/internal/tensor"
)

// reduceOp folds all elements into a 0-dim scalar tensor.
func (cpu *CPUBackend) reduceOp(name string, x *tensor.RawTensor,
	f32 func([]float32) float32, f64 func([]float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = f32(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = f64(x.AsFloat64())
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}

// Sum computes the total sum of all elements (0-dim scalar result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduceOp("sum", x,
		func(src []float32) float32 {
			var sum float32
			for _, v := range src {
				sum += v
			}
			return sum
		},
		func(src []float64) float64 {
			var sum float64
			for _, v := range src {
				sum += v
			}
			return sum
		})
}

// Mean computes the arithmetic mean of all elements (0-dim scalar result).
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	n := x.NumElements()
	return cpu.reduceOp("mean", x,
		func(src []float32) float32 {
			var sum float32
			for _, v := range src {
				sum += v
			}
			return sum / float32(n)
		},
		func(src []float64) float64 {
			var sum float64
			for _, v := range src {
				sum += v
			}
			return sum / float64(n)
		})
}

// Max computes the maximum of all elements (0-dim scalar result).
func (cpu *CPUBackend) Max(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduceOp("max", x,
		func(src []float32) float32 {
			m := src[0]
			for _, v := range src[1:] {
				if v > m {
					m = v
				}
			}
			return m
		},
		func(src []float64) float64 {
			m := src[0]
			for _, v := range src[1:] {
				if v > m {
					m = v
				}
			}
			return m
		})
}

// Min computes the minimum of all elements (0-dim scalar result).
func (cpu *CPUBackend) Min(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduceOp("min", x,
		func(src []float32) float32 {
			m := src[0]
			for _, v := range src[1:] {
				if v < m {
					m = v
				}
			}
			return m
		},
		func(src []float64) float64 {
			m := src[0]
			for _, v := range src[1:] {
				if v < m {
					m = v
				}
			}
			return m
		})
}
