package functional

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/metrics/internal/tensor"
)

// ssimOptions collects the optional knobs of the SSIM metric. Defaults
// follow Wang et al., "Image Quality Assessment: From Error Visibility to
// Structural Similarity".
type ssimOptions struct {
	kernelSize [2]int
	sigma      [2]float64
	dataRange  *float64
	k1, k2     float64
}

func defaultSSIMOptions() ssimOptions {
	return ssimOptions{
		kernelSize: [2]int{11, 11},
		sigma:      [2]float64{1.5, 1.5},
		k1:         0.01,
		k2:         0.03,
	}
}

// SSIMOption configures SSIM.
type SSIMOption func(*ssimOptions)

// WithKernelSize sets the height and width of the Gaussian window.
// Both must be odd and positive. Defaults to 11x11.
func WithKernelSize(h, w int) SSIMOption {
	return func(o *ssimOptions) { o.kernelSize = [2]int{h, w} }
}

// WithSigma sets the standard deviation of the Gaussian window along
// height and width. Both must be positive. Defaults to 1.5.
func WithSigma(h, w float64) SSIMOption {
	return func(o *ssimOptions) { o.sigma = [2]float64{h, w} }
}

// WithSSIMDataRange fixes the signal range instead of estimating it as the
// larger of the two input ranges.
func WithSSIMDataRange(dr float64) SSIMOption {
	return func(o *ssimOptions) { o.dataRange = &dr }
}

// WithK1 sets the luminance stability constant. Defaults to 0.01.
func WithK1(k1 float64) SSIMOption {
	return func(o *ssimOptions) { o.k1 = k1 }
}

// WithK2 sets the contrast stability constant. Defaults to 0.03.
func WithK2(k2 float64) SSIMOption {
	return func(o *ssimOptions) { o.k2 = k2 }
}

// gaussianWindow builds a normalized 1D Gaussian of the given size as a
// [1, size] row vector. Positions are centered on zero, so for odd sizes
// they run -(size-1)/2 .. (size-1)/2.
func gaussianWindow[T tensor.Float, B tensor.Backend](size int, sigma float64, b B) (*tensor.Tensor[T, B], error) {
	pos := make([]T, size)
	start := float64(1-size) / 2
	for i := range pos {
		pos[i] = T(start + float64(i))
	}
	g, err := tensor.FromSlice(pos, tensor.Shape{1, size}, b)
	if err != nil {
		return nil, errors.Wrap(err, "gaussian window")
	}
	g = g.Mul(g).MulScalar(T(-1.0 / (2 * sigma * sigma))).Exp()
	return g.DivScalar(g.Sum().Item()), nil
}

// GaussianKernel builds a [channel, 1, kh, kw] Gaussian convolution kernel
// suitable for a depthwise Conv2D with groups == channel. Each channel
// carries the same 2D window, formed as the outer product of two 1D
// Gaussians, and each window sums to one.
func GaussianKernel[T tensor.Float, B tensor.Backend](channel int, kernelSize [2]int, sigma [2]float64, b B) (*tensor.Tensor[T, B], error) {
	if channel < 1 {
		return nil, &ConfigError{Reason: fmt.Sprintf("channel count must be positive, got %d", channel)}
	}
	for _, k := range kernelSize {
		if k <= 0 || k%2 == 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("kernel size must consist of odd positive numbers, got %v", kernelSize)}
		}
	}
	for _, s := range sigma {
		if s <= 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("sigma must consist of positive numbers, got %v", sigma)}
		}
	}

	gh, err := gaussianWindow[T](kernelSize[0], sigma[0], b)
	if err != nil {
		return nil, err
	}
	gw, err := gaussianWindow[T](kernelSize[1], sigma[1], b)
	if err != nil {
		return nil, err
	}

	// Outer product: [kh, 1] @ [1, kw] -> [kh, kw].
	window := gh.Reshape(kernelSize[0], 1).MatMul(gw)

	kernel := tensor.Zeros[T](tensor.Shape{channel, 1, kernelSize[0], kernelSize[1]}, b)
	src := window.Data()
	dst := kernel.Data()
	for c := 0; c < channel; c++ {
		copy(dst[c*len(src):(c+1)*len(src)], src)
	}
	return kernel, nil
}

// SSIM computes the structural similarity index between two image batches.
//
// pred and target must be [N, C, H, W] tensors of identical shape. The
// per-pixel SSIM map is computed over Gaussian-weighted local windows
// (valid region only, no padding) and collapsed according to reduction.
// Identical inputs score 1; the metric is symmetric in its arguments.
//
// All five windowed moments are evaluated with a single depthwise
// convolution over the stacked inputs, so the cost is one conv pass
// regardless of batch size.
func SSIM[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction, opts ...SSIMOption) (*tensor.Tensor[T, B], error) {
	o := defaultSSIMOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if pred.DType() != target.DType() {
		return nil, &TypeMismatchError{Pred: pred.DType(), Target: target.DType()}
	}
	if !pred.Shape().Equal(target.Shape()) {
		return nil, &ShapeMismatchError{Pred: pred.Shape(), Target: target.Shape()}
	}
	if len(pred.Shape()) != 4 {
		return nil, &RankError{Pred: pred.Shape(), Target: target.Shape(), Want: 4}
	}

	channel := pred.Shape()[1]
	kernel, err := GaussianKernel[T](channel, o.kernelSize, o.sigma, pred.Backend())
	if err != nil {
		return nil, err
	}

	var dr float64
	if o.dataRange != nil {
		dr = *o.dataRange
	} else {
		predRange := float64(pred.Max().Item() - pred.Min().Item())
		targetRange := float64(target.Max().Item() - target.Min().Item())
		dr = math.Max(predRange, targetRange)
	}
	c1 := T(math.Pow(o.k1*dr, 2))
	c2 := T(math.Pow(o.k2*dr, 2))

	// Stack [pred, target, pred², target², pred·target] along the batch
	// dimension and run one depthwise convolution to get all five
	// windowed means at once.
	stacked := tensor.Cat([]*tensor.Tensor[T, B]{
		pred,
		target,
		pred.Mul(pred),
		target.Mul(target),
		pred.Mul(target),
	}, 0)
	moments := stacked.Conv2D(kernel, 1, 0, channel).Chunk(5, 0)

	muPred := moments[0]
	muTarget := moments[1]
	// Var[x] = E[x²] - E[x]², Cov[x,y] = E[xy] - E[x]E[y].
	sigmaPredSq := moments[2].Sub(muPred.Mul(muPred))
	sigmaTargetSq := moments[3].Sub(muTarget.Mul(muTarget))
	sigmaPredTarget := moments[4].Sub(muPred.Mul(muTarget))

	luminance := muPred.Mul(muTarget).MulScalar(2).AddScalar(c1)
	contrast := sigmaPredTarget.MulScalar(2).AddScalar(c2)
	numerator := luminance.Mul(contrast)

	denominator := muPred.Mul(muPred).Add(muTarget.Mul(muTarget)).AddScalar(c1).
		Mul(sigmaPredSq.Add(sigmaTargetSq).AddScalar(c2))

	score, err := Reduce(numerator.Div(denominator), reduction)
	if err != nil {
		return nil, errors.Wrap(err, "ssim")
	}
	return score, nil
}
