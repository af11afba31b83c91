package tensor

import (
	"fmt"
	"math"
)

// checkPermuteArgs validates the kernel inputs shared by both directions:
// buffers present, positive dimensions, non-zero element size, no overflow
// in the element and byte totals, and buffers large enough for the shape.
// Overflow is tested pairwise before each multiplication so the product
// never wraps. Returns the element total.
func checkPermuteArgs(dst, src []byte, d0, d1, d2, d3, elemSize int) (uint, error) {
	if src == nil || dst == nil {
		return 0, fmt.Errorf("nil buffer")
	}
	if d0 <= 0 || d1 <= 0 || d2 <= 0 || d3 <= 0 {
		return 0, fmt.Errorf("non-positive dimension in [%d, %d, %d, %d]", d0, d1, d2, d3)
	}
	if elemSize <= 0 {
		return 0, fmt.Errorf("invalid element size %d", elemSize)
	}

	a, b, c, d := uint(d0), uint(d1), uint(d2), uint(d3)
	if a > math.MaxUint/b {
		return 0, fmt.Errorf("dimension product overflows")
	}
	ab := a * b
	if ab > math.MaxUint/c {
		return 0, fmt.Errorf("dimension product overflows")
	}
	abc := ab * c
	if abc > math.MaxUint/d {
		return 0, fmt.Errorf("dimension product overflows")
	}
	total := abc * d
	if total > math.MaxUint/uint(elemSize) {
		return 0, fmt.Errorf("byte size overflows")
	}

	totalBytes := total * uint(elemSize)
	if totalBytes > uint(len(src)) {
		return 0, fmt.Errorf("source buffer is %d bytes, shape requires %d", len(src), totalBytes)
	}
	if totalBytes > uint(len(dst)) {
		return 0, fmt.Errorf("destination buffer is %d bytes, shape requires %d", len(dst), totalBytes)
	}
	return total, nil
}

// NCHWToNHWC permutes a channel-first buffer into channel-last order.
//
// src holds n*c*h*w elements of elemSize bytes in [N][C][H][W] order; dst
// receives them in [N][H][W][C] order. The loop nest iterates n,h,w,c so
// writes to dst are sequential. Indices are bounds-checked against the
// element total immediately before each copy; any violation aborts the
// kernel, leaving dst's remaining contents undefined. src and dst must be
// disjoint.
func NCHWToNHWC(dst, src []byte, n, c, h, w, elemSize int) error {
	total, err := checkPermuteArgs(dst, src, n, c, h, w, elemSize)
	if err != nil {
		return err
	}

	es := uint(elemSize)
	uc, uh, uw := uint(c), uint(h), uint(w)
	for un := uint(0); un < uint(n); un++ {
		for ih := uint(0); ih < uh; ih++ {
			for iw := uint(0); iw < uw; iw++ {
				for ic := uint(0); ic < uc; ic++ {
					// NCHW index: n*C*H*W + c*H*W + h*W + w
					srcIdx := un*uc*uh*uw + ic*uh*uw + ih*uw + iw
					// NHWC index: n*H*W*C + h*W*C + w*C + c
					dstIdx := un*uh*uw*uc + ih*uw*uc + iw*uc + ic
					if srcIdx >= total || dstIdx >= total {
						return fmt.Errorf("index out of range: src %d, dst %d, total %d", srcIdx, dstIdx, total)
					}
					copy(dst[dstIdx*es:(dstIdx+1)*es], src[srcIdx*es:(srcIdx+1)*es])
				}
			}
		}
	}
	return nil
}

// NHWCToNCHW permutes a channel-last buffer into channel-first order.
// It is the algebraic inverse of NCHWToNHWC; the loop nest iterates
// n,c,h,w so writes to dst are sequential. Same contract otherwise.
func NHWCToNCHW(dst, src []byte, n, h, w, c, elemSize int) error {
	total, err := checkPermuteArgs(dst, src, n, h, w, c, elemSize)
	if err != nil {
		return err
	}

	es := uint(elemSize)
	uc, uh, uw := uint(c), uint(h), uint(w)
	for un := uint(0); un < uint(n); un++ {
		for ic := uint(0); ic < uc; ic++ {
			for ih := uint(0); ih < uh; ih++ {
				for iw := uint(0); iw < uw; iw++ {
					// NHWC index: n*H*W*C + h*W*C + w*C + c
					srcIdx := un*uh*uw*uc + ih*uw*uc + iw*uc + ic
					// NCHW index: n*C*H*W + c*H*W + h*W + w
					dstIdx := un*uc*uh*uw + ic*uh*uw + ih*uw + iw
					if srcIdx >= total || dstIdx >= total {
						return fmt.Errorf("index out of range: src %d, dst %d, total %d", srcIdx, dstIdx, total)
					}
					copy(dst[dstIdx*es:(dstIdx+1)*es], src[srcIdx*es:(srcIdx+1)*es])
				}
			}
		}
	}
	return nil
}
