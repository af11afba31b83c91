package tensor

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Describe renders the descriptor as structured text for logging and
// debugging. It is diagnostic only: malformed descriptors (nil dimensions,
// unknown type, overflowing sizes) are reported as invalid instead of
// failing.
func (info TensorInfo) Describe() string {
	var b strings.Builder
	b.WriteString("Tensor Info:\n")
	fmt.Fprintf(&b, "  Data Type: %s (%d)\n", info.DType, int32(info.DType))
	fmt.Fprintf(&b, "  Layout: %s (%d)\n", info.Layout, int32(info.Layout))
	if info.Dims == nil {
		b.WriteString("  Dimensions: invalid (nil)\n")
	} else {
		fmt.Fprintf(&b, "  Dimensions: %d %s\n", len(info.Dims), info.Dims)
	}
	if total := info.NumElements(); total == 0 {
		b.WriteString("  Total Elements: invalid\n")
	} else {
		fmt.Fprintf(&b, "  Total Elements: %d\n", total)
	}
	fmt.Fprintf(&b, "  Element Size: %d bytes\n", info.DType.Size())
	if size, ok := info.ByteSize(); ok {
		fmt.Fprintf(&b, "  Total Size: %d bytes\n", size)
	} else {
		b.WriteString("  Total Size: overflow or invalid\n")
	}
	return b.String()
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so descriptors
// can be attached to log events as structured fields:
//
//	log.Info().Object("tensor", res.Info).Msg("converted")
func (info TensorInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("dtype", info.DType.String())
	e.Str("layout", info.Layout.String())
	if info.Dims == nil {
		e.Bool("invalid", true)
	} else {
		e.Ints("dims", info.Dims)
	}
	e.Uint("elements", info.NumElements())
	if size, ok := info.ByteSize(); ok {
		e.Uint("bytes", size)
	} else {
		e.Bool("size_overflow", true)
	}
}
