package tensor

// Layout identifies the dimension ordering of a 4D tensor buffer.
type Layout int32

// Supported layouts.
const (
	// LayoutUnknown means the ordering could not be determined.
	LayoutUnknown Layout = iota
	// LayoutNCHW is channel-first: (batch, channel, height, width).
	LayoutNCHW
	// LayoutNHWC is channel-last: (batch, height, width, channel).
	LayoutNHWC
	// LayoutGeneric marks shapes with no permutation semantics
	// (any rank other than 4).
	LayoutGeneric
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutNCHW:
		return "NCHW"
	case LayoutNHWC:
		return "NHWC"
	case LayoutGeneric:
		return "generic"
	case LayoutUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// DetectConfig holds the thresholds the layout heuristic applies to 4D
// shapes. The defaults are historical and deliberately preserved: callers
// may depend on exact detection parity, so tune them only through a config,
// never by editing the defaults.
type DetectConfig struct {
	// MaxChannels is the largest dimension still plausible as a channel
	// count.
	MaxChannels int
	// MinSpatial is the smallest dimension plausible as an image height
	// or width.
	MinSpatial int
	// Alignments are the strides a spatial dimension must be divisible
	// by (any one suffices). Image sides are typically multiples of
	// 8, 16 or 32.
	Alignments []int
}

// DefaultDetectConfig returns the historical detection thresholds.
func DefaultDetectConfig() DetectConfig {
	return DetectConfig{
		MaxChannels: 128,
		MinSpatial:  32,
		Alignments:  []int{8, 16, 32},
	}
}

// DetectLayout guesses the layout of dims using the default thresholds.
// See DetectConfig.Detect.
func DetectLayout(dims Shape) Layout {
	return DefaultDetectConfig().Detect(dims)
}

// Detect guesses whether a shape is channel-first or channel-last.
//
// Only 4D shapes carry layout semantics: nil or rank-0 input yields
// LayoutUnknown, any other non-4D rank yields LayoutGeneric. For rank 4 the
// heuristic looks for a small channel dimension next to two spatial
// dimensions; when neither pattern matches it returns LayoutUnknown rather
// than guessing, because a wrong guess silently corrupts data downstream.
// Callers hitting LayoutUnknown must supply an explicit layout.
func (cfg DetectConfig) Detect(dims Shape) Layout {
	if len(dims) == 0 {
		return LayoutUnknown
	}
	if len(dims) != 4 {
		return LayoutGeneric
	}

	chanFirst := dims[1]
	chanLast := dims[3]

	// Channel-first: [N, C, H, W] with small C and spatial H, W.
	if chanFirst <= cfg.MaxChannels && cfg.spatial(dims[2]) && cfg.spatial(dims[3]) {
		return LayoutNCHW
	}
	// Channel-last: [N, H, W, C] with spatial H, W and small C.
	if chanLast <= cfg.MaxChannels && cfg.spatial(dims[1]) && cfg.spatial(dims[2]) {
		return LayoutNHWC
	}
	return LayoutUnknown
}

// spatial reports whether dim is plausible as an image height or width:
// at least MinSpatial and divisible by one of the configured alignments.
func (cfg DetectConfig) spatial(dim int) bool {
	if dim < cfg.MinSpatial {
		return false
	}
	for _, a := range cfg.Alignments {
		if a > 0 && dim%a == 0 {
			return true
		}
	}
	return false
}
