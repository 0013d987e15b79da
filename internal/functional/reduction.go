// Package functional implements regression and image-similarity quality
// metrics (MSE, RMSE, MAE, RMSLE, PSNR, SSIM) over tensors.
//
// Every function is pure: no global state, no mutation of inputs, results
// depend only on arguments. The Partial* variants return named partial
// sums that workers can merge across disjoint data partitions before the
// final (non-additive) step is applied.
package functional

import (
	"fmt"

	"github.com/born-ml/metrics/internal/tensor"
)

// Reduction selects how a metric collapses its element-wise score tensor.
type Reduction int

// Supported reduction modes.
const (
	// ReduceMean collapses to the arithmetic mean over all elements (0-dim scalar).
	ReduceMean Reduction = iota
	// ReduceSum collapses to the sum over all elements (0-dim scalar).
	ReduceSum
	// ReduceNone applies no reduction and preserves the input shape.
	ReduceNone
)

// String returns a human-readable name for the reduction mode.
func (r Reduction) String() string {
	switch r {
	case ReduceMean:
		return "elementwise_mean"
	case ReduceSum:
		return "sum"
	case ReduceNone:
		return "none"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// Reduce collapses x according to the reduction mode.
//
// ReduceMean and ReduceSum return a 0-dim scalar; ReduceNone returns x
// unchanged. Any other value fails with a ConfigError.
func Reduce[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B], r Reduction) (*tensor.Tensor[T, B], error) {
	switch r {
	case ReduceMean:
		return x.Mean(), nil
	case ReduceSum:
		return x.Sum(), nil
	case ReduceNone:
		return x, nil
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unsupported reduction mode %s", r)}
	}
}
