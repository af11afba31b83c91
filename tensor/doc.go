// Copyright 2026 The Tensorconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor converts raw tensor buffers between channel-first (NCHW)
// and channel-last (NHWC) memory layouts.
//
// # Overview
//
// The package operates on opaque byte buffers described by a dimension
// list, an element-type tag and a layout tag. It provides:
//   - Strict shape validation with overflow-safe size arithmetic
//   - A conservative layout-detection heuristic that answers Unknown
//     rather than guessing
//   - Byte-exact NCHW↔NHWC permutation kernels
//   - A conversion orchestrator returning an owned, releasable Result
//
// # Basic Usage
//
//	import "github.com/convml/tensorconv/tensor"
//
//	func main() {
//	    dims := tensor.Shape{1, 3, 224, 224}
//	    res, err := tensor.Convert(buf, dims, tensor.Float32,
//	        tensor.LayoutNCHW, tensor.LayoutNHWC)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer res.Release()
//	    // res.Data is in NHWC order, res.Info.Dims == [1, 224, 224, 3]
//	}
//
// # Supported Element Types
//
// float32, int32, uint8, int64, int16, int8 and float16 (handled as opaque
// 2-byte elements; see EncodeFloat16/DecodeFloat16). Tag values follow the
// TFLite TensorType encoding.
//
// # Failure Model
//
// Malformed input always yields a wrapped sentinel error (ErrNilInput,
// ErrInvalidDimensions, ErrUnsupportedType, ErrMemoryAllocation,
// ErrLayoutConversionFailed, ErrDataCopyFailed) and never a partial result.
package tensor
