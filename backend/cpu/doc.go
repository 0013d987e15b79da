// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - Grouped (depthwise) 2D convolution for windowed statistics
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/metrics/backend/cpu"
//	    "github.com/born-ml/metrics/functional"
//	    "github.com/born-ml/metrics/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    pred := tensor.Rand[float32](tensor.Shape{16, 1, 16, 16}, backend)
//	    target := pred.MulScalar(0.75)
//
//	    score, err := functional.SSIM(pred, target, functional.ReduceMean)
//	    _ = score
//	    _ = err
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Operations never mutate
// their operands and share no mutable state between calls.
package cpu
