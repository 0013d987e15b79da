// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package functional

import (
	"github.com/born-ml/metrics/internal/functional"
	"github.com/born-ml/metrics/tensor"
)

// Reduction selects how a metric collapses its element-wise score tensor.
type Reduction = functional.Reduction

// Supported reduction modes.
const (
	ReduceMean = functional.ReduceMean
	ReduceSum  = functional.ReduceSum
	ReduceNone = functional.ReduceNone
)

// Typed errors reported by the metric functions.
type (
	// ConfigError reports an invalid metric configuration.
	ConfigError = functional.ConfigError
	// ShapeMismatchError reports pred/target shapes that must match but do not.
	ShapeMismatchError = functional.ShapeMismatchError
	// RankError reports an input without the expected number of dimensions.
	RankError = functional.RankError
	// TypeMismatchError reports pred/target data types that must match but do not.
	TypeMismatchError = functional.TypeMismatchError
)

// Mergeable partial states for distributed reduction.
type (
	// MSEState holds additive partial sums of a mean squared error.
	MSEState[T tensor.Float, B tensor.Backend] = functional.MSEState[T, B]
	// MAEState holds additive partial sums of a mean absolute error.
	MAEState[T tensor.Float, B tensor.Backend] = functional.MAEState[T, B]
	// PSNRState holds additive partial sums of a PSNR plus the signal range.
	PSNRState[T tensor.Float, B tensor.Backend] = functional.PSNRState[T, B]
)

// Option types for the image metrics.
type (
	// PSNROption configures PSNR and PartialPSNR.
	PSNROption = functional.PSNROption
	// SSIMOption configures SSIM.
	SSIMOption = functional.SSIMOption
)

// WithDataRange fixes the PSNR signal range instead of estimating it from
// the target tensor.
func WithDataRange(dr float64) PSNROption { return functional.WithDataRange(dr) }

// WithLogBase sets the PSNR logarithm base. Defaults to 10.
func WithLogBase(base float64) PSNROption { return functional.WithLogBase(base) }

// WithKernelSize sets the SSIM Gaussian window size. Defaults to 11x11.
func WithKernelSize(h, w int) SSIMOption { return functional.WithKernelSize(h, w) }

// WithSigma sets the SSIM Gaussian window standard deviation. Defaults to 1.5.
func WithSigma(h, w float64) SSIMOption { return functional.WithSigma(h, w) }

// WithSSIMDataRange fixes the SSIM signal range instead of estimating it
// from the inputs.
func WithSSIMDataRange(dr float64) SSIMOption { return functional.WithSSIMDataRange(dr) }

// WithK1 sets the SSIM luminance stability constant. Defaults to 0.01.
func WithK1(k1 float64) SSIMOption { return functional.WithK1(k1) }

// WithK2 sets the SSIM contrast stability constant. Defaults to 0.03.
func WithK2(k2 float64) SSIMOption { return functional.WithK2(k2) }

// Reduce collapses x according to the reduction mode.
func Reduce[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], r Reduction) (*tensor.Tensor[T, B], error) {
	return functional.Reduce(x, r)
}

// MSE computes the mean squared error between pred and target.
func MSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return functional.MSE(pred, target, reduction)
}

// PartialMSE computes the mergeable partial state of the MSE.
func PartialMSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *MSEState[T, B] {
	return functional.PartialMSE(pred, target)
}

// MAE computes the mean absolute error between pred and target.
func MAE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return functional.MAE(pred, target, reduction)
}

// PartialMAE computes the mergeable partial state of the MAE.
func PartialMAE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *MAEState[T, B] {
	return functional.PartialMAE(pred, target)
}

// RMSE computes the root mean squared error between pred and target. The
// square root is applied after the reduction.
func RMSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return functional.RMSE(pred, target, reduction)
}

// PartialRMSE computes an MSE-shaped partial state over the
// already-reduced inner MSE; see the internal documentation for the
// semantics caveat.
func PartialRMSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*MSEState[T, B], error) {
	return functional.PartialRMSE(pred, target, reduction)
}

// RMSLE computes the root mean squared log error between pred and target.
func RMSLE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return functional.RMSLE(pred, target, reduction)
}

// PSNR computes the peak signal-to-noise ratio between pred and target.
func PSNR[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction, opts ...PSNROption) (*tensor.Tensor[T, B], error) {
	return functional.PSNR(pred, target, reduction, opts...)
}

// PartialPSNR computes the mergeable partial state of the PSNR.
func PartialPSNR[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], opts ...PSNROption) *PSNRState[T, B] {
	return functional.PartialPSNR(pred, target, opts...)
}

// SSIM computes the structural similarity index between two [N, C, H, W]
// image batches.
func SSIM[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction, opts ...SSIMOption) (*tensor.Tensor[T, B], error) {
	return functional.SSIM(pred, target, reduction, opts...)
}

// GaussianKernel builds the [channel, 1, kh, kw] Gaussian convolution
// kernel used by SSIM.
func GaussianKernel[T tensor.Float, B tensor.Backend](channel int, kernelSize [2]int, sigma [2]float64, b B) (*tensor.Tensor[T, B], error) {
	return functional.GaussianKernel[T](channel, kernelSize, sigma, b)
}
