package tensor

import (
	"encoding/binary"
	"fmt"

	"github.com/x448/float16"
)

// Go has no native float16, so Float16 buffers move through the converter
// as opaque 2-byte elements. These helpers build and read such buffers.

// EncodeFloat16 packs float32 values into a little-endian IEEE 754
// half-precision buffer suitable for a Float16 tensor.
func EncodeFloat16(vals []float32) []byte {
	buf := make([]byte, len(vals)*Float16.Size())
	for i, v := range vals {
		binary.LittleEndian.PutUint16(buf[i*2:], float16.Fromfloat32(v).Bits())
	}
	return buf
}

// DecodeFloat16 unpacks a little-endian half-precision buffer into float32
// values. The buffer length must be a multiple of the float16 width.
func DecodeFloat16(buf []byte) ([]float32, error) {
	if len(buf)%Float16.Size() != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of %d", len(buf), Float16.Size())
	}
	vals := make([]float32, len(buf)/2)
	for i := range vals {
		vals[i] = float16.Frombits(binary.LittleEndian.Uint16(buf[i*2:])).Float32()
	}
	return vals, nil
}
