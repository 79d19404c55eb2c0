// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense row-major float32 tensors with zero-copy views.
//
// # Overview
//
// A Tensor is either a leaf that owns a contiguous buffer, or a view that
// maps its own coordinates onto a parent. This package provides:
//   - Creation from nested Go slices (From), flat slices (FromSlice) and
//     generators (Zeros, Ones, Full, Rand, Randn, Arange)
//   - Zero-copy views: Delete, PermuteDims, SwapAxes, MoveAxis, T, Unsqueeze
//   - Reductions: Reduce, Min, Max, ArgMin, ArgMax, NaNMin, NaNMax, Sum, Mean
//   - A NumPy-like printer and NaN-aware equality
//
// # Basic Usage
//
//	import "github.com/born-ml/ndview/tensor"
//
//	func main() {
//	    x, err := tensor.From([][]int{{1, 2, 3}, {4, 5, 6}})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    tt, _ := x.T()          // (3, 2) view
//	    d, _ := x.Delete(1, 1)  // (2, 2) view without column 1
//	    fmt.Println(tt)
//	    fmt.Println(d.Max())
//	}
//
// # Indexing
//
// Get and Set take either one index per axis or a single flat row-major
// index. Negative indices count from the end. At and SetAt are the
// panicking variants for code that has already validated its indices.
//
// # Views
//
// Views never copy. Writes through a view are visible through the leaf and
// every other view sharing it, and views can be stacked to any depth. Clone
// materialises any tensor into a fresh leaf.
//
// # Errors
//
// Errors wrap the exported sentinels (ErrShape, ErrIndexOutOfBounds,
// ErrArgumentCount, ErrEmptyReduction, ErrNilInput) and should be matched
// with errors.Is.
//
// # Concurrency
//
// Tensors are not safe for concurrent mutation. Concurrent reads of a tensor
// that nobody writes are safe.
package tensor
