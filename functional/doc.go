// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package functional provides regression and image-similarity quality
// metrics over tensors.
//
// # Overview
//
// The package covers:
//   - MSE, RMSE, MAE, RMSLE with configurable reduction
//   - PSNR (peak signal-to-noise ratio)
//   - SSIM (structural similarity) over [N, C, H, W] image batches
//
// All metrics are pure functions of their inputs. Structural problems
// (mismatched shapes, wrong rank, bad configuration) are reported as
// typed errors before any computation; numeric degeneracy such as a zero
// data range or log of a non-positive value yields NaN/Inf results that
// propagate to the caller.
//
// # Basic Usage
//
//	backend := cpu.New()
//
//	pred, _ := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{4}, backend)
//	target, _ := tensor.FromSlice([]float32{0, 1, 2, 2}, tensor.Shape{4}, backend)
//
//	score, err := functional.MSE(pred, target, functional.ReduceMean)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(score.Item()) // 0.25
//
// # Distributed Reduction
//
// The Partial* variants return states whose fields are additive across
// disjoint data partitions. Workers compute a state each, merge them, and
// finalize once at the end:
//
//	a := functional.PartialMSE(pred1, target1)
//	b := functional.PartialMSE(pred2, target2)
//	score := a.Merge(b).Mean()
//
// The non-additive step (division, square root, logarithm) happens only in
// the finalizer, so the merged result is exact, not an average of
// per-partition results.
package functional
