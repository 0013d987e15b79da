// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the type-safe tensor engine backing the Born
// metrics library.
//
// # Overview
//
// Tensors are the data structure every metric operates on. This package
// provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Device abstraction through the Backend interface
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/metrics/tensor"
//	    "github.com/born-ml/metrics/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    pred := tensor.Rand[float32](tensor.Shape{16, 1, 16, 16}, backend)
//	    target := pred.MulScalar(0.75)
//
//	    diff := pred.Sub(target)
//	    mse := diff.Mul(diff).Mean()
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32, float64, int32, int64, and uint8;
// metric computations themselves are restricted to the Float constraint
// (float32, float64).
//
// # Broadcasting
//
// Element-wise operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)    // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)     // (3, 4)
//	c := a.Add(b)                                              // (3, 4)
//
// # Purity
//
// No operation mutates its operands. Every call allocates a fresh result
// on the backend's device, which keeps metric computations referentially
// transparent and safe for concurrent use.
package tensor
