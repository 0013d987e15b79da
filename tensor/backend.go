// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/metrics/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: pure Go reference implementation
//   - GPU backends can be supplied externally by satisfying this interface
//
// Every operation allocates its result on the backend's own device, so a
// metric computed over GPU-resident tensors stays on the GPU.
//
// Example:
//
//	import (
//	    "github.com/born-ml/metrics/tensor"
//	    "github.com/born-ml/metrics/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend = tensor.Backend
