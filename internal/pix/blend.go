package pix

// blendKind tags the closed set of compositing strategies.
type blendKind int

const (
	blendNone blendKind = iota
	blendTransparency
	blendMultiply
	blendScreen
)

// BlendMode is one of a closed set of per-pixel compositing
// strategies. The zero value is NoBlend.
type BlendMode struct {
	kind   blendKind
	factor float64 // transparency weight, valid only for blendTransparency
}

// Transparency mixes foreground and background with the given weight:
// fg*f + bg*(1-f) per channel. The factor is clamped into [0,1] at
// construction.
func Transparency(factor float64) BlendMode {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return BlendMode{kind: blendTransparency, factor: factor}
}

// Multiply darkens: fg*bg/255 per channel.
func Multiply() BlendMode { return BlendMode{kind: blendMultiply} }

// Screen lightens: 255 - (255-fg)*(255-bg)/255 per channel.
func Screen() BlendMode { return BlendMode{kind: blendScreen} }

// NoBlend keeps the foreground pixel unchanged.
func NoBlend() BlendMode { return BlendMode{kind: blendNone} }

// Combine composites a foreground pixel over a background pixel.
// Results truncate toward zero, then clamp, per channel.
func (m BlendMode) Combine(fg, bg Color) Color {
	switch m.kind {
	case blendTransparency:
		f := m.factor
		return colorFromFloats(
			float64(fg.R)*f+float64(bg.R)*(1-f),
			float64(fg.G)*f+float64(bg.G)*(1-f),
			float64(fg.B)*f+float64(bg.B)*(1-f),
		)
	case blendMultiply:
		return NewColor(
			int(fg.R)*int(bg.R)/255,
			int(fg.G)*int(bg.G)/255,
			int(fg.B)*int(bg.B)/255,
		)
	case blendScreen:
		return NewColor(
			255-(255-int(fg.R))*(255-int(bg.R))/255,
			255-(255-int(fg.G))*(255-int(bg.G))/255,
			255-(255-int(fg.B))*(255-int(bg.B))/255,
		)
	default:
		return fg
	}
}

// ParseBlendMode maps a descriptor token to a blend mode. Unknown
// tokens silently degrade to NoBlend; parsing never fails. The
// transparency grammar takes no factor argument, so the token maps to
// a fixed 0.5 mix.
func ParseBlendMode(token string) BlendMode {
	switch token {
	case "transparency":
		return Transparency(0.5)
	case "multiply":
		return Multiply()
	case "screen":
		return Screen()
	default:
		return NoBlend()
	}
}
