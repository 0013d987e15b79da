package functional

import (
	"math"

	"github.com/pkg/errors"

	"github.com/born-ml/metrics/internal/tensor"
)

// psnrOptions collects the optional knobs of the PSNR metric.
type psnrOptions struct {
	dataRange *float64
	base      float64
}

func defaultPSNROptions() psnrOptions {
	return psnrOptions{base: 10}
}

// PSNROption configures PSNR and PartialPSNR.
type PSNROption func(*psnrOptions)

// WithDataRange fixes the signal range of the inputs instead of estimating
// it from the target tensor.
func WithDataRange(dr float64) PSNROption {
	return func(o *psnrOptions) { o.dataRange = &dr }
}

// WithLogBase sets the logarithm base of the decibel scale. Defaults to 10.
func WithLogBase(base float64) PSNROption {
	return func(o *psnrOptions) { o.base = base }
}

// psnrFromMSE maps an MSE tensor to the PSNR scale:
//
//	(10 / ln base) * (2*ln(dataRange) - ln(mse))
//
// A zero MSE yields +Inf and a zero data range yields -Inf, matching the
// limit behavior of the formula.
func psnrFromMSE[T tensor.Float, B tensor.Backend](mse *tensor.Tensor[T, B], dataRange, base float64) *tensor.Tensor[T, B] {
	baseE := mse.Log().MulScalar(-1).AddScalar(T(2 * math.Log(dataRange)))
	return baseE.MulScalar(T(10 / math.Log(base)))
}

// PSNR computes the peak signal-to-noise ratio between pred and target.
//
// Both inputs are flattened before comparison. The data range defaults to
// max(target) - min(target) and can be pinned with WithDataRange; for
// standardized or batched data the estimate can vary between calls, so an
// explicit range is recommended there.
func PSNR[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction, opts ...PSNROption) (*tensor.Tensor[T, B], error) {
	o := defaultPSNROptions()
	for _, opt := range opts {
		opt(&o)
	}

	pred = pred.Flatten()
	target = target.Flatten()

	var dr float64
	if o.dataRange != nil {
		dr = *o.dataRange
	} else {
		dr = float64(target.Max().Item() - target.Min().Item())
	}

	mse, err := MSE(pred, target, reduction)
	if err != nil {
		return nil, errors.Wrap(err, "psnr")
	}
	return psnrFromMSE(mse, dr, o.base), nil
}

// PSNRState holds the partial sums of a PSNR computation over one data
// partition. SumSquaredError and NObservations are additive across
// partitions; DataRange is a property of the whole signal and must agree
// between the states being merged, it is not derivable from the partial
// sums after the fact.
type PSNRState[T tensor.Float, B tensor.Backend] struct {
	DataRange       float64
	SumSquaredError *tensor.Tensor[T, B]
	NObservations   *tensor.Tensor[T, B]
}

// PartialPSNR computes the mergeable partial state of the PSNR between
// pred and target. WithLogBase has no effect here; the base is chosen at
// Finalize time.
func PartialPSNR[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], opts ...PSNROption) *PSNRState[T, B] {
	o := defaultPSNROptions()
	for _, opt := range opts {
		opt(&o)
	}

	pred = pred.Flatten()
	target = target.Flatten()

	var dr float64
	if o.dataRange != nil {
		dr = *o.dataRange
	} else {
		dr = float64(target.Max().Item() - target.Min().Item())
	}

	e := squaredError(pred, target)
	return &PSNRState[T, B]{
		DataRange:       dr,
		SumSquaredError: e.Sum(),
		NObservations:   countScalar(e),
	}
}

// Merge combines two partition states by summing the additive fields.
// The receiver's DataRange is kept.
func (s *PSNRState[T, B]) Merge(other *PSNRState[T, B]) *PSNRState[T, B] {
	return &PSNRState[T, B]{
		DataRange:       s.DataRange,
		SumSquaredError: s.SumSquaredError.Add(other.SumSquaredError),
		NObservations:   s.NObservations.Add(other.NObservations),
	}
}

// Finalize converts the merged state into the PSNR over the union of the
// partitions, on a logarithmic scale with the given base.
func (s *PSNRState[T, B]) Finalize(base float64) *tensor.Tensor[T, B] {
	mse := s.SumSquaredError.Div(s.NObservations)
	return psnrFromMSE(mse, s.DataRange, base)
}
