// Package preset bundles named descriptor chains so common multi-step
// effects can be selected with a single flag.
package preset

// Preset is a named sequence of transformation descriptors, applied
// in order.
type Preset struct {
	Name        string
	Description string
	Chain       []string
}

// Built-in presets.
var presets = map[string]Preset{
	"enhance": {
		Name:        "enhance",
		Description: "sharpen detail lost to resizing",
		Chain:       []string{"sharpen"},
	},
	"soften": {
		Name:        "soften",
		Description: "gentle gaussian-style blur",
		Chain:       []string{"blur"},
	},
	"sketch": {
		Name:        "sketch",
		Description: "grayscale edge drawing",
		Chain:       []string{"grayscale", "edge"},
	},
	"negative": {
		Name:        "negative",
		Description: "photo-negative inversion",
		Chain:       []string{"invert"},
	},
	"relief": {
		Name:        "relief",
		Description: "embossed relief look",
		Chain:       []string{"grayscale", "emboss"},
	},
}

// Get returns a preset by name. Unknown names return a zero Preset
// and false; callers decide whether that is an error.
func Get(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names lists the built-in preset names in a stable order.
func Names() []string {
	return []string{"enhance", "negative", "relief", "sketch", "soften"}
}
