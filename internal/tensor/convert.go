package tensor

import (
	"errors"
	"fmt"
	"math"
)

// Conversion failure kinds. Convert wraps these with per-call detail;
// match them with errors.Is.
var (
	// ErrNilInput means a required buffer or dimension list was missing.
	ErrNilInput = errors.New("input pointer is nil")
	// ErrInvalidDimensions covers rank 0, rank > MaxRank, non-positive
	// dimensions and element-count overflow.
	ErrInvalidDimensions = errors.New("invalid dimension parameters")
	// ErrUnsupportedType means the element-type tag has no known width.
	ErrUnsupportedType = errors.New("unsupported data type")
	// ErrMemoryAllocation means the destination buffer could not be
	// allocated.
	ErrMemoryAllocation = errors.New("memory allocation failed")
	// ErrLayoutConversionFailed means the layout pair is unsupported or a
	// permutation kernel failed mid-copy.
	ErrLayoutConversionFailed = errors.New("layout conversion failed")
	// ErrDataCopyFailed means the straight-copy path failed.
	ErrDataCopyFailed = errors.New("data copy failed")
)

// maxErrDetail bounds the formatted detail attached to a conversion error.
const maxErrDetail = 256

// convErr wraps a failure kind with bounded formatted detail.
func convErr(kind error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	if len(detail) > maxErrDetail {
		detail = detail[:maxErrDetail]
	}
	if detail == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, detail)
}

// TensorInfo describes a tensor buffer: its dimensions, element type and
// layout.
type TensorInfo struct {
	Dims   Shape
	DType  DataType
	Layout Layout
}

// NumElements returns the total element count, 0 if the shape is invalid.
func (info TensorInfo) NumElements() uint {
	return info.Dims.NumElements()
}

// ByteSize returns the total buffer size in bytes. It returns 0 with
// ok=false when the shape or type is invalid or the size overflows.
func (info TensorInfo) ByteSize() (uint, bool) {
	es := info.DType.Size()
	total := info.Dims.NumElements()
	if es == 0 || total == 0 {
		return 0, false
	}
	if total > math.MaxUint/uint(es) {
		return 0, false
	}
	return total * uint(es), true
}

// Result owns the destination buffer produced by a conversion, together
// with the descriptor of what the buffer now holds. Convert returns it
// fully populated or not at all; once returned the caller owns it until
// Release.
type Result struct {
	Data []byte
	Info TensorInfo
}

// Release drops the data buffer and dimension sequence and zeroes the
// descriptor. It is idempotent and safe on nil and zero-valued results;
// Go's collector reclaims the memory, so this exists to make ownership
// hand-back explicit and to guard against use-after-release.
func (r *Result) Release() {
	if r == nil {
		return
	}
	r.Data = nil
	r.Info = TensorInfo{}
}

// Released reports whether the result no longer holds a buffer.
func (r *Result) Released() bool {
	return r == nil || (r.Data == nil && r.Info.Dims == nil)
}

// Convert copies src, described by dims and dtype, into a freshly allocated
// buffer laid out as dstLayout.
//
// A permutation runs only when rank is 4 and the layout pair is exactly
// NCHW↔NHWC; then the result's dimensions are the permuted order the kernel
// actually produced. Any other pair of explicitly known, differing layouts
// is rejected rather than silently byte-copied under a wrong label. When
// either layout is LayoutUnknown the data is copied verbatim and the
// original dimension order is preserved. src is read-only for the duration
// of the call and never retained; every failure returns (nil, error) with
// nothing allocated in the result.
func Convert(src []byte, dims Shape, dtype DataType, srcLayout, dstLayout Layout) (*Result, error) {
	if src == nil || dims == nil {
		return nil, convErr(ErrNilInput, "source data or dimensions missing")
	}
	if err := dims.Validate(); err != nil {
		return nil, convErr(ErrInvalidDimensions, "%v", err)
	}

	elemSize := dtype.Size()
	if elemSize == 0 {
		return nil, convErr(ErrUnsupportedType, "tag %d", int32(dtype))
	}

	total := dims.NumElements()
	if total == 0 {
		return nil, convErr(ErrInvalidDimensions, "element count of %v is zero or overflows", dims)
	}
	if total > math.MaxUint/uint(elemSize) {
		return nil, convErr(ErrInvalidDimensions, "byte size of %v exceeds the address space", dims)
	}
	totalBytes := total * uint(elemSize)
	if totalBytes > math.MaxInt {
		return nil, convErr(ErrMemoryAllocation, "cannot allocate %d bytes", totalBytes)
	}
	if uint(len(src)) < totalBytes {
		return nil, convErr(ErrInvalidDimensions, "source buffer is %d bytes, shape requires %d", len(src), totalBytes)
	}

	// Supported transitions are exactly NCHW↔NHWC on rank-4 shapes. A pair
	// of explicitly known, differing layouts outside that set must fail:
	// falling back to a byte copy would mislabel the data.
	permute := false
	if len(dims) == 4 && srcLayout != dstLayout {
		switch {
		case srcLayout == LayoutNCHW && dstLayout == LayoutNHWC,
			srcLayout == LayoutNHWC && dstLayout == LayoutNCHW:
			permute = true
		case srcLayout != LayoutUnknown && dstLayout != LayoutUnknown:
			return nil, convErr(ErrLayoutConversionFailed, "from %s to %s is not supported", srcLayout, dstLayout)
		}
	}

	dst := make([]byte, totalBytes)
	outDims := dims.Clone()

	if permute {
		var err error
		if srcLayout == LayoutNCHW {
			// [N, C, H, W] -> [N, H, W, C]
			outDims[1], outDims[2], outDims[3] = dims[2], dims[3], dims[1]
			err = NCHWToNHWC(dst, src, dims[0], dims[1], dims[2], dims[3], elemSize)
		} else {
			// [N, H, W, C] -> [N, C, H, W]
			outDims[1], outDims[2], outDims[3] = dims[3], dims[1], dims[2]
			err = NHWCToNCHW(dst, src, dims[0], dims[1], dims[2], dims[3], elemSize)
		}
		if err != nil {
			return nil, convErr(ErrLayoutConversionFailed, "%v", err)
		}
	} else {
		if n := copy(dst, src[:totalBytes]); uint(n) != totalBytes {
			return nil, convErr(ErrDataCopyFailed, "copied %d of %d bytes", n, totalBytes)
		}
	}

	return &Result{
		Data: dst,
		Info: TensorInfo{
			Dims:   outDims,
			DType:  dtype,
			Layout: dstLayout,
		},
	}, nil
}
