package functional

import (
	"github.com/born-ml/metrics/internal/tensor"
)

// squaredError computes the element-wise squared difference (pred - target)²
// with broadcasting, without any reduction.
func squaredError[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	diff := pred.Sub(target)
	return diff.Mul(diff)
}

// countScalar returns a 0-dim scalar tensor holding the element count of x.
func countScalar[T tensor.Float, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return tensor.Scalar[T, B](T(x.NumElements()), x.Backend())
}

// MSE computes the mean squared error between pred and target.
//
// pred and target must be broadcast-compatible. The element-wise squared
// error is collapsed according to reduction.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{4}, backend)
//	y, _ := tensor.FromSlice([]float32{0, 1, 2, 2}, tensor.Shape{4}, backend)
//	score, _ := functional.MSE(x, y, functional.ReduceMean) // 0.25
func MSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return Reduce(squaredError(pred, target), reduction)
}

// MSEState holds the partial sums of an MSE computation over one data
// partition. States from disjoint partitions can be merged by summing the
// fields; dividing the merged SquaredError by the merged NObservations
// yields the exact MSE over the union. The division must happen only
// after all partitions are merged.
type MSEState[T tensor.Float, B tensor.Backend] struct {
	SquaredError  *tensor.Tensor[T, B] // sum of squared errors
	NObservations *tensor.Tensor[T, B] // number of contributing elements
}

// PartialMSE computes the mergeable partial state of the MSE between pred
// and target, with no reduction applied.
func PartialMSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *MSEState[T, B] {
	e := squaredError(pred, target)
	return &MSEState[T, B]{
		SquaredError:  e.Sum(),
		NObservations: countScalar(e),
	}
}

// Merge combines two partition states by summing the partial sums.
// Merging is commutative and associative.
func (s *MSEState[T, B]) Merge(other *MSEState[T, B]) *MSEState[T, B] {
	return &MSEState[T, B]{
		SquaredError:  s.SquaredError.Add(other.SquaredError),
		NObservations: s.NObservations.Add(other.NObservations),
	}
}

// Mean finalizes the state into the mean squared error over everything
// that has been merged into it.
func (s *MSEState[T, B]) Mean() *tensor.Tensor[T, B] {
	return s.SquaredError.Div(s.NObservations)
}

// MAE computes the mean absolute error between pred and target.
//
// Identical in structure to MSE with |pred - target| as the element-wise
// error.
func MAE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return Reduce(pred.Sub(target).Abs(), reduction)
}

// MAEState holds the partial sums of an MAE computation over one data
// partition; see MSEState for the merge contract.
type MAEState[T tensor.Float, B tensor.Backend] struct {
	AbsoluteError *tensor.Tensor[T, B] // sum of absolute errors
	NObservations *tensor.Tensor[T, B] // number of contributing elements
}

// PartialMAE computes the mergeable partial state of the MAE between pred
// and target.
func PartialMAE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B]) *MAEState[T, B] {
	e := pred.Sub(target).Abs()
	return &MAEState[T, B]{
		AbsoluteError: e.Sum(),
		NObservations: countScalar(e),
	}
}

// Merge combines two partition states by summing the partial sums.
func (s *MAEState[T, B]) Merge(other *MAEState[T, B]) *MAEState[T, B] {
	return &MAEState[T, B]{
		AbsoluteError: s.AbsoluteError.Add(other.AbsoluteError),
		NObservations: s.NObservations.Add(other.NObservations),
	}
}

// Mean finalizes the state into the mean absolute error.
func (s *MAEState[T, B]) Mean() *tensor.Tensor[T, B] {
	return s.AbsoluteError.Div(s.NObservations)
}

// RMSE computes the root mean squared error between pred and target.
//
// The square root is applied strictly after the reduction: for ReduceMean
// and ReduceSum the result is sqrt of the collapsed scalar, for ReduceNone
// it is the element-wise square root of the unreduced squared error.
func RMSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	m, err := MSE(pred, target, reduction)
	if err != nil {
		return nil, err
	}
	return m.Sqrt(), nil
}

// PartialRMSE computes an MSE-shaped partial state for RMSE.
//
// Note that the state is taken over the already-reduced inner MSE tensor,
// not over the raw per-element errors, so its meaning depends on the
// reduction argument: with ReduceMean the state holds a single mean in
// SquaredError with NObservations of 1. This mirrors the public MSE state
// shape rather than a corrected semantics; callers wanting exact
// distributed RMSE should merge PartialMSE states and take the square
// root of the merged mean.
func PartialRMSE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*MSEState[T, B], error) {
	m, err := MSE(pred, target, reduction)
	if err != nil {
		return nil, err
	}
	return &MSEState[T, B]{
		SquaredError:  m.Sum(),
		NObservations: countScalar(m),
	}, nil
}

// RMSLE computes the root mean squared log error between pred and target:
// RMSE(log(pred+1), log(target+1)).
//
// Elements where pred+1 or target+1 is non-positive produce NaN/Inf,
// which propagate through the result; no check is performed.
func RMSLE[T tensor.Float, B tensor.Backend](pred, target *tensor.Tensor[T, B], reduction Reduction) (*tensor.Tensor[T, B], error) {
	return RMSE(pred.AddScalar(1).Log(), target.AddScalar(1).Log(), reduction)
}
