package pix

import (
	"fmt"
	"math"
)

// Kernel is a fixed-size matrix of convolution weights, row-major.
type Kernel struct {
	w, h    int
	weights []float64
}

// NewKernel builds a w×h kernel from row-major weights. The slice is
// copied.
func NewKernel(w, h int, weights []float64) (Kernel, error) {
	if w <= 0 || h <= 0 {
		return Kernel{}, fmt.Errorf("pix: invalid kernel dimensions %dx%d", w, h)
	}
	if len(weights) != w*h {
		return Kernel{}, fmt.Errorf("pix: weight count %d does not match %dx%d", len(weights), w, h)
	}
	k := Kernel{w: w, h: h, weights: make([]float64, w*h)}
	copy(k.weights, weights)
	return k, nil
}

// mustKernel builds the package's own 3×3 kernels; weight tables here
// are compile-time constants, so a length mismatch is a programming
// error.
func mustKernel(w, h int, weights []float64) Kernel {
	k, err := NewKernel(w, h, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Width returns the kernel width.
func (k Kernel) Width() int { return k.w }

// Height returns the kernel height.
func (k Kernel) Height() int { return k.h }

// Weights returns a copy of the row-major weight sequence.
func (k Kernel) Weights() []float64 {
	out := make([]float64, len(k.weights))
	copy(out, k.weights)
	return out
}

// Sum returns the sum of all weights.
func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k.weights {
		s += w
	}
	return s
}

// Normalize returns a kernel scaled so its weights sum to 1.
// Normalization is opt-in: filters like edge and emboss rely on
// unnormalized weights. A zero-sum kernel is returned unchanged.
func (k Kernel) Normalize() Kernel {
	sum := k.Sum()
	if math.Abs(sum) < 1e-9 {
		return k
	}
	out := Kernel{w: k.w, h: k.h, weights: make([]float64, len(k.weights))}
	for i, w := range k.weights {
		out.weights[i] = w / sum
	}
	return out
}

// Convolve multiplies the kernel elementwise against a same-sized
// window and sums the products per channel, producing one output
// pixel. Per-channel sums are kept as floats throughout and only
// truncated and clamped when the output Color is constructed, so
// intermediate out-of-range values (routine with edge and emboss)
// saturate exactly once.
func (k Kernel) Convolve(win *Window) Color {
	var r, g, b float64
	for i, w := range k.weights {
		c := win.pix[i]
		r += w * float64(c.R)
		g += w * float64(c.G)
		b += w * float64(c.B)
	}
	return colorFromFloats(r, g, b)
}

// Window is the image patch a Kernel convolves against: the w×h block
// of pixels extracted from an image around an anchor pixel.
type Window struct {
	w, h int
	pix  []Color
}

// Width returns the window width.
func (w *Window) Width() int { return w.w }

// Height returns the window height.
func (w *Window) Height() int { return w.h }

// At returns the patch pixel at (x, y).
func (w *Window) At(x, y int) Color {
	return w.pix[y*w.w+x]
}

// Built-in 3×3 filter kernels. Sharpen and blur are normalized (weight
// sum 1); edge and emboss are deliberately not.
var builtinKernels = map[string]Kernel{
	"sharpen": mustKernel(3, 3, []float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}),
	"blur": mustKernel(3, 3, []float64{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	}).Normalize(),
	"edge": mustKernel(3, 3, []float64{
		1, 0, -1,
		2, 0, -2,
		1, 0, -1,
	}),
	"emboss": mustKernel(3, 3, []float64{
		-2, -1, 0,
		-1, 1, 1,
		0, 1, 2,
	}),
}

// KernelByName looks up a built-in kernel. Unknown names return the
// zero Kernel and false rather than an error, mirroring how the
// descriptor grammar degrades on unrecognized tokens.
func KernelByName(name string) (Kernel, bool) {
	k, ok := builtinKernels[name]
	return k, ok
}

// KernelNames lists the built-in kernel names in a stable order.
func KernelNames() []string {
	return []string{"sharpen", "blur", "edge", "emboss"}
}
