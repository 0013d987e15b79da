package functional

import (
	"fmt"

	"github.com/born-ml/metrics/internal/tensor"
)

// The metrics surface reports structural problems through typed errors so
// callers can distinguish configuration mistakes from bad inputs. All
// validation happens before any computation; no partial results are
// produced on failure. Numeric degeneracy (zero data range, zero MSE,
// logs of non-positive values) is NOT an error: it yields NaN/Inf results
// that propagate to the caller.

// ConfigError reports an invalid metric configuration: an unsupported
// reduction mode, or malformed kernel size / sigma parameters.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "metrics: invalid configuration: " + e.Reason
}

// ShapeMismatchError reports that pred and target must have identical
// shapes but do not.
type ShapeMismatchError struct {
	Pred, Target tensor.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("metrics: expected pred and target to have the same shape, got pred %v and target %v",
		e.Pred, e.Target)
}

// RankError reports an input tensor without the expected number of
// dimensions.
type RankError struct {
	Pred, Target tensor.Shape
	Want         int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("metrics: expected pred and target to have %d dimensions, got pred %v and target %v",
		e.Want, e.Pred, e.Target)
}

// TypeMismatchError reports that pred and target carry different dtypes.
type TypeMismatchError struct {
	Pred, Target tensor.DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("metrics: expected pred and target to have the same data type, got pred %s and target %s",
		e.Pred, e.Target)
}
