// Package pix is the image transformation core: the immutable color
// and image model, blend modes, convolution kernels, and the closed
// set of transformations. It does no I/O and holds no global state;
// every operation is a pure function from images to images with
// bit-for-bit reproducible integer semantics.
package pix

// Color is an immutable 3-channel RGB value. Channels are always in
// [0,255]; every constructor clamps, so a Color can never hold an
// out-of-range channel.
type Color struct {
	R, G, B uint8
}

// NewColor builds a Color from integer channel values, clamping each
// into [0,255].
func NewColor(r, g, b int) Color {
	return Color{clampInt(r), clampInt(g), clampInt(b)}
}

// colorFromFloats builds a Color from intermediate floating-point
// channel sums. Each channel is truncated toward zero first, then
// clamped — truncation must happen explicitly here, not through an
// implicit uint8 conversion, because conversions of out-of-range
// floats to integer types are undefined across values.
func colorFromFloats(r, g, b float64) Color {
	return Color{truncClamp(r), truncClamp(g), truncClamp(b)}
}

// truncClamp truncates v toward zero and saturates into [0,255].
func truncClamp(v float64) uint8 {
	return clampInt(int(v))
}

func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
