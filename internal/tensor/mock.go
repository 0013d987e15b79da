package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively in float64 for correctness
// verification; the CPU backend is the optimized implementation.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// MulScalar multiplies every element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v * s })
}

// AddScalar adds a scalar to every element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from every element.
func (m *MockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v - s })
}

// DivScalar divides every element by a scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v / s })
}

// Exp computes the element-wise exponential.
func (m *MockBackend) Exp(x *RawTensor) *RawTensor {
	return m.unary(x, math.Exp)
}

// Log computes the element-wise natural logarithm.
func (m *MockBackend) Log(x *RawTensor) *RawTensor {
	return m.unary(x, math.Log)
}

// Sqrt computes the element-wise square root.
func (m *MockBackend) Sqrt(x *RawTensor) *RawTensor {
	return m.unary(x, math.Sqrt)
}

// Abs computes the element-wise absolute value.
func (m *MockBackend) Abs(x *RawTensor) *RawTensor {
	return m.unary(x, math.Abs)
}

// Pow raises every element to the given power.
func (m *MockBackend) Pow(x *RawTensor, exponent float64) *RawTensor {
	return m.unary(x, func(v float64) float64 { return math.Pow(v, exponent) })
}

// MatMul performs 2D matrix multiplication.
func (m *MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic("MatMul only supports 2D tensors in mock backend")
	}
	if aShape[1] != bShape[0] {
		panic(fmt.Sprintf("incompatible shapes for MatMul: %v @ %v", aShape, bShape))
	}

	M, K := aShape[0], aShape[1]
	N := bShape[1]

	result, err := NewRaw(Shape{M, N}, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := make([]float64, M*N)

	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			sum := 0.0
			for k := 0; k < K; k++ {
				sum += aData[i*K+k] * bData[k*N+j]
			}
			resultData[i*N+j] = sum
		}
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Conv2D performs grouped 2D convolution (naive implementation for testing).
func (m *MockBackend) Conv2D(input, kernel *RawTensor, stride, padding, groups int) *RawTensor {
	inputShape := input.Shape()
	kernelShape := kernel.Shape()

	if len(inputShape) != 4 || len(kernelShape) != 4 {
		panic("Conv2D requires 4D tensors [N,C,H,W]")
	}

	N := inputShape[0]
	cIn := inputShape[1]
	H := inputShape[2]
	W := inputShape[3]
	cOut := kernelShape[0]
	kh := kernelShape[2]
	kw := kernelShape[3]

	if cIn%groups != 0 || cOut%groups != 0 {
		panic(fmt.Sprintf("Conv2D: groups %d must divide input channels %d and output channels %d", groups, cIn, cOut))
	}
	if kernelShape[1] != cIn/groups {
		panic(fmt.Sprintf("Conv2D: kernel channels %d != input channels per group %d", kernelShape[1], cIn/groups))
	}

	outH := (H+2*padding-kh)/stride + 1
	outW := (W+2*padding-kw)/stride + 1

	output, err := NewRaw(Shape{N, cOut, outH, outW}, input.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	inputData := m.toFloat64Slice(input)
	kernelData := m.toFloat64Slice(kernel)
	outputData := make([]float64, N*cOut*outH*outW)

	cInPerGroup := cIn / groups
	cOutPerGroup := cOut / groups

	for n := 0; n < N; n++ {
		for oc := 0; oc < cOut; oc++ {
			icBase := (oc / cOutPerGroup) * cInPerGroup
			for oh := 0; oh < outH; oh++ {
				for ow := 0; ow < outW; ow++ {
					sum := 0.0
					for ic := 0; ic < cInPerGroup; ic++ {
						for i := 0; i < kh; i++ {
							for j := 0; j < kw; j++ {
								h := oh*stride - padding + i
								w := ow*stride - padding + j
								if h < 0 || h >= H || w < 0 || w >= W {
									continue
								}
								inputIdx := n*cIn*H*W + (icBase+ic)*H*W + h*W + w
								kernelIdx := oc*cInPerGroup*kh*kw + ic*kh*kw + i*kw + j
								sum += inputData[inputIdx] * kernelData[kernelIdx]
							}
						}
					}
					outputData[n*cOut*outH*outW+oc*outH*outW+oh*outW+ow] = sum
				}
			}
		}
	}

	m.fromFloat64Slice(outputData, output)
	return output
}

// Sum reduces all elements to a 0-dim scalar.
func (m *MockBackend) Sum(x *RawTensor) *RawTensor {
	sum := 0.0
	for _, v := range m.toFloat64Slice(x) {
		sum += v
	}
	return m.scalarResult(sum, x.DType())
}

// Mean reduces all elements to a 0-dim scalar.
func (m *MockBackend) Mean(x *RawTensor) *RawTensor {
	sum := 0.0
	data := m.toFloat64Slice(x)
	for _, v := range data {
		sum += v
	}
	return m.scalarResult(sum/float64(len(data)), x.DType())
}

// Max reduces all elements to a 0-dim scalar.
func (m *MockBackend) Max(x *RawTensor) *RawTensor {
	data := m.toFloat64Slice(x)
	best := data[0]
	for _, v := range data[1:] {
		if v > best {
			best = v
		}
	}
	return m.scalarResult(best, x.DType())
}

// Min reduces all elements to a 0-dim scalar.
func (m *MockBackend) Min(x *RawTensor) *RawTensor {
	data := m.toFloat64Slice(x)
	best := data[0]
	for _, v := range data[1:] {
		if v < best {
			best = v
		}
	}
	return m.scalarResult(best, x.DType())
}

// Reshape changes tensor shape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape tensor with %d elements to shape %v (%d elements)",
			t.NumElements(), newShape, newShape.NumElements()))
	}

	result, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	copy(result.Data(), t.Data())
	return result
}

// Cat concatenates tensors along a dimension (naive implementation).
func (m *MockBackend) Cat(tensors []*RawTensor, dim int) *RawTensor {
	first := tensors[0].Shape()
	outShape := first.Clone()
	for _, t := range tensors[1:] {
		outShape[dim] += t.Shape()[dim]
	}

	result, err := NewRaw(outShape, tensors[0].DType(), m.Device())
	if err != nil {
		panic(err)
	}

	outer := 1
	for i := 0; i < dim; i++ {
		outer *= first[i]
	}
	inner := 1
	for i := dim + 1; i < len(first); i++ {
		inner *= first[i]
	}

	resultData := make([]float64, outShape.NumElements())
	rowLen := outShape[dim] * inner
	offset := 0
	for _, t := range tensors {
		data := m.toFloat64Slice(t)
		tRowLen := t.Shape()[dim] * inner
		for o := 0; o < outer; o++ {
			copy(resultData[o*rowLen+offset:o*rowLen+offset+tRowLen], data[o*tRowLen:(o+1)*tRowLen])
		}
		offset += tRowLen
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// Chunk splits a tensor into n equal parts along a dimension.
func (m *MockBackend) Chunk(x *RawTensor, n, dim int) []*RawTensor {
	shape := x.Shape()
	if shape[dim]%n != 0 {
		panic(fmt.Sprintf("Chunk: dimension %d of size %d not divisible by %d", dim, shape[dim], n))
	}

	partShape := shape.Clone()
	partShape[dim] = shape[dim] / n

	outer := 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	inner := 1
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}

	data := m.toFloat64Slice(x)
	rowLen := shape[dim] * inner
	partRowLen := partShape[dim] * inner

	parts := make([]*RawTensor, n)
	for p := 0; p < n; p++ {
		part, err := NewRaw(partShape, x.DType(), m.Device())
		if err != nil {
			panic(err)
		}
		partData := make([]float64, partShape.NumElements())
		for o := 0; o < outer; o++ {
			copy(partData[o*partRowLen:(o+1)*partRowLen], data[o*rowLen+p*partRowLen:o*rowLen+(p+1)*partRowLen])
		}
		m.fromFloat64Slice(partData, part)
		parts[p] = part
	}
	return parts
}

// Helper functions

func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := make([]float64, outShape.NumElements())

	for i := range resultData {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())
		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

func (m *MockBackend) unary(x *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(x)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = op(v)
	}

	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) scalarResult(value float64, dtype DataType) *RawTensor {
	result, err := NewRaw(Shape{}, dtype, m.Device())
	if err != nil {
		panic(err)
	}
	m.fromFloat64Slice([]float64{value}, result)
	return result
}

func (m *MockBackend) toFloat64Slice(t *RawTensor) []float64 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		src := t.AsFloat64()
		dst := make([]float64, len(src))
		copy(dst, src)
		return dst
	case Int32:
		src := t.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Int64:
		src := t.AsInt64()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := t.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := t.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	}
}

func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	// Align trailing dimensions; size-1 dimensions repeat.
	inStrides := inShape.ComputeStrides()
	offset := len(outShape) - len(inShape)

	idx := 0
	for i := 0; i < len(inShape); i++ {
		pos := indices[i+offset]
		if inShape[i] == 1 {
			pos = 0
		}
		idx += pos * inStrides[i]
	}
	return idx
}

func scalarToFloat64(scalar any) float64 {
	switch v := scalar.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint8:
		return float64(v)
	case int:
		return float64(v)
	default:
		panic(fmt.Sprintf("unsupported scalar type: %T", scalar))
	}
}
