package cpu

import (
	"fmt"

	"github.com/born-ml/metrics/internal/tensor"
)

// Cat concatenates tensors along the given dimension.
// All tensors must share dtype and have equal shapes except along dim.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: empty tensor list")
	}

	first := tensors[0]
	ndim := len(first.Shape())
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	catDimSize := 0
	for i, t := range tensors {
		shape := t.Shape()
		if len(shape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has rank %d, expected %d", i, len(shape), ndim))
		}
		if t.DType() != first.DType() {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), first.DType()))
		}
		for d := 0; d < ndim; d++ {
			if d != dim && shape[d] != first.Shape()[d] {
				panic(fmt.Sprintf("cat: tensor %d shape %v incompatible with %v along dim %d",
					i, shape, first.Shape(), dim))
			}
		}
		catDimSize += shape[dim]
	}

	outShape := first.Shape().Clone()
	outShape[dim] = catDimSize

	result, err := tensor.NewRaw(outShape, first.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// Copy in row-major order: for each "outer" index (dims before dim),
	// the tensors contribute contiguous blocks of (dimSize * inner) elements.
	elemSize := first.DType().Size()
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= outShape[d]
	}
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= outShape[d]
	}

	dst := result.Data()
	dstOffset := 0
	for o := 0; o < outer; o++ {
		for _, t := range tensors {
			block := t.Shape()[dim] * inner * elemSize
			src := t.Data()[o*block : (o+1)*block]
			copy(dst[dstOffset:], src)
			dstOffset += block
		}
	}

	return result
}

// Chunk splits a tensor into n equal parts along the given dimension.
// The dimension size must be divisible by n.
func (cpu *CPUBackend) Chunk(x *tensor.RawTensor, n, dim int) []*tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("chunk: dimension %d out of range for %dD tensor", dim, ndim))
	}
	if n < 1 || shape[dim]%n != 0 {
		panic(fmt.Sprintf("chunk: dimension %d (size %d) not divisible into %d parts", dim, shape[dim], n))
	}

	partShape := shape.Clone()
	partShape[dim] = shape[dim] / n

	elemSize := x.DType().Size()
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}
	partBlock := partShape[dim] * inner * elemSize
	fullBlock := shape[dim] * inner * elemSize

	src := x.Data()
	parts := make([]*tensor.RawTensor, n)
	for p := 0; p < n; p++ {
		part, err := tensor.NewRaw(partShape, x.DType(), cpu.device)
		if err != nil {
			panic(fmt.Sprintf("chunk: %v", err))
		}
		dst := part.Data()
		for o := 0; o < outer; o++ {
			copy(dst[o*partBlock:(o+1)*partBlock], src[o*fullBlock+p*partBlock:])
		}
		parts[p] = part
	}

	return parts
}
