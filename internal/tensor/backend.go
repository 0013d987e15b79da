package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: pure Go reference implementation
//   - GPU backends can be plugged in externally by satisfying this interface
//
// Every operation allocates its result on the backend's own device; metric
// computation therefore stays on the device the inputs live on.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor // multiply by scalar
	AddScalar(x *RawTensor, scalar any) *RawTensor // add scalar
	SubScalar(x *RawTensor, scalar any) *RawTensor // subtract scalar
	DivScalar(x *RawTensor, scalar any) *RawTensor // divide by scalar

	// Math operations (element-wise).
	//
	// Domain violations do not fail: Log(0) = -Inf, Log(x<0) = NaN,
	// Sqrt(x<0) = NaN. Non-finite values propagate to the caller.
	Exp(x *RawTensor) *RawTensor                   // exponential
	Log(x *RawTensor) *RawTensor                   // natural logarithm
	Sqrt(x *RawTensor) *RawTensor                  // square root
	Abs(x *RawTensor) *RawTensor                   // absolute value
	Pow(x *RawTensor, exponent float64) *RawTensor // power

	// Matrix operations.
	MatMul(a, b *RawTensor) *RawTensor // 2D matrix multiplication

	// Convolutional operations.
	//
	// Conv2D performs grouped 2D convolution.
	// Input [N, C_in, H, W], kernel [C_out, C_in/groups, K_h, K_w],
	// output [N, C_out, (H+2p-K_h)/s+1, (W+2p-K_w)/s+1].
	// groups == C_in with a [C, 1, K_h, K_w] kernel is a depthwise
	// convolution: each channel is filtered independently.
	Conv2D(input, kernel *RawTensor, stride, padding, groups int) *RawTensor

	// Full reductions (0-dim scalar results).
	Sum(x *RawTensor) *RawTensor
	Mean(x *RawTensor) *RawTensor
	Max(x *RawTensor) *RawTensor
	Min(x *RawTensor) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// Manipulation operations.
	Cat(tensors []*RawTensor, dim int) *RawTensor // concatenate along dimension
	Chunk(x *RawTensor, n, dim int) []*RawTensor  // split into n equal parts

	// Metadata.
	Name() string
	Device() Device
}
