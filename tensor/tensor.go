// Copyright 2026 The Tensorconv Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/convml/tensorconv/internal/tensor"
)

// Type aliases for public API

// DataType identifies the element type of a tensor buffer. Tag values
// follow the TFLite TensorType encoding.
type DataType = tensor.DataType

// Element type constants.
const (
	Float32 DataType = tensor.Float32
	Int32   DataType = tensor.Int32
	Uint8   DataType = tensor.Uint8
	Int64   DataType = tensor.Int64
	Int16   DataType = tensor.Int16
	Int8    DataType = tensor.Int8
	Float16 DataType = tensor.Float16
)

// Layout identifies the dimension ordering of a 4D tensor buffer.
type Layout = tensor.Layout

// Layout constants.
const (
	LayoutUnknown Layout = tensor.LayoutUnknown
	LayoutNCHW    Layout = tensor.LayoutNCHW
	LayoutNHWC    Layout = tensor.LayoutNHWC
	LayoutGeneric Layout = tensor.LayoutGeneric
)

// Shape represents the dimensions of a tensor.
// Example: Shape{1, 3, 224, 224} is a typical NCHW image batch.
type Shape = tensor.Shape

// MaxRank is the highest supported number of dimensions.
const MaxRank = tensor.MaxRank

// TensorInfo describes a tensor buffer: dimensions, element type, layout.
type TensorInfo = tensor.TensorInfo

// Result owns the buffer produced by Convert until the caller releases it.
type Result = tensor.Result

// DetectConfig holds the layout-detection thresholds.
type DetectConfig = tensor.DetectConfig

// Conversion failure kinds, matchable with errors.Is.
var (
	ErrNilInput               = tensor.ErrNilInput
	ErrInvalidDimensions      = tensor.ErrInvalidDimensions
	ErrUnsupportedType        = tensor.ErrUnsupportedType
	ErrMemoryAllocation       = tensor.ErrMemoryAllocation
	ErrLayoutConversionFailed = tensor.ErrLayoutConversionFailed
	ErrDataCopyFailed         = tensor.ErrDataCopyFailed
)

// Convert copies src, described by dims and dtype, into a freshly
// allocated buffer laid out as dstLayout. Permutation happens only for
// rank-4 NCHW↔NHWC pairs; explicitly known unsupported pairs fail rather
// than silently copying.
//
// Example:
//
//	res, err := tensor.Convert(buf, tensor.Shape{1, 3, 224, 224},
//	    tensor.Float32, tensor.LayoutNCHW, tensor.LayoutNHWC)
func Convert(src []byte, dims Shape, dtype DataType, srcLayout, dstLayout Layout) (*Result, error) {
	return tensor.Convert(src, dims, dtype, srcLayout, dstLayout)
}

// DetectLayout guesses the layout of dims with the default thresholds,
// returning LayoutUnknown when the shape is ambiguous. Use
// DefaultDetectConfig to tune the thresholds.
func DetectLayout(dims Shape) Layout {
	return tensor.DetectLayout(dims)
}

// DefaultDetectConfig returns the historical detection thresholds.
func DefaultDetectConfig() DetectConfig {
	return tensor.DefaultDetectConfig()
}

// NCHWToNHWC permutes a channel-first buffer into channel-last order.
//
// This is a low-level kernel; most users should use Convert instead.
func NCHWToNHWC(dst, src []byte, n, c, h, w, elemSize int) error {
	return tensor.NCHWToNHWC(dst, src, n, c, h, w, elemSize)
}

// NHWCToNCHW permutes a channel-last buffer into channel-first order.
//
// This is a low-level kernel; most users should use Convert instead.
func NHWCToNCHW(dst, src []byte, n, h, w, c, elemSize int) error {
	return tensor.NHWCToNCHW(dst, src, n, h, w, c, elemSize)
}

// EncodeFloat16 packs float32 values into a little-endian half-precision
// buffer suitable for a Float16 tensor.
func EncodeFloat16(vals []float32) []byte {
	return tensor.EncodeFloat16(vals)
}

// DecodeFloat16 unpacks a little-endian half-precision buffer into float32
// values.
func DecodeFloat16(buf []byte) ([]float32, error) {
	return tensor.DecodeFloat16(buf)
}
