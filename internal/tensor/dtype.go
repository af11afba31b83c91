// Package tensor implements layout conversion for raw tensor buffers:
// shape and type validation, NCHW/NHWC detection, and the permutation
// kernels that rewrite element order between the two layouts.
package tensor

// DataType identifies the element type of a tensor buffer.
//
// Tag values follow the TFLite TensorType encoding, which is why they are
// not contiguous. Unrecognized tags are valid values of the type but carry
// no byte width.
type DataType int32

// Supported element types.
const (
	Float32 DataType = 0
	Int32   DataType = 1
	Uint8   DataType = 2
	Int64   DataType = 3
	Int16   DataType = 6
	Int8    DataType = 8
	Float16 DataType = 9
)

// Size returns the byte width of one element of the data type.
// Unrecognized tags return 0, the invalid sentinel.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Int64:
		return 8
	case Int16, Float16:
		// Float16 is 2 bytes on every supported target.
		return 2
	case Uint8, Int8:
		return 1
	default:
		return 0
	}
}

// Valid reports whether the tag maps to a known element width.
func (dt DataType) Valid() bool {
	return dt.Size() != 0
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint8:
		return "uint8"
	case Int64:
		return "int64"
	case Int16:
		return "int16"
	case Int8:
		return "int8"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}
