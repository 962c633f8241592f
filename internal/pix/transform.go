package pix

// Transformation is one of a closed set of image→image operations.
// The unexported marker method keeps the set closed to this package;
// there is no open-ended subclassing, only the variants below.
//
// Apply never mutates its input. On a recoverable error (crop out of
// bounds, blend size mismatch) it returns the INPUT image together
// with the diagnostic error: callers report and keep going, so one bad
// operation never aborts a pipeline. The returned image is always
// usable, error or not.
type Transformation interface {
	Apply(img *Image) (*Image, error)
	transformation()
}

// Crop extracts a w×h rectangle at offset (x, y).
type Crop struct {
	X, Y, W, H int
}

func (c Crop) transformation() {}

// Apply delegates to Image.Crop. On a BoundsError the input is
// returned unchanged alongside the error.
func (c Crop) Apply(img *Image) (*Image, error) {
	out, err := img.Crop(c.X, c.Y, c.W, c.H)
	if err != nil {
		return img, err
	}
	return out, nil
}

// Blend composites a foreground image over the input using a blend
// mode. Both images must have identical dimensions.
type Blend struct {
	Fg   *Image
	Mode BlendMode
}

func (b Blend) transformation() {}

func (b Blend) Apply(img *Image) (*Image, error) {
	if b.Fg.Width() != img.Width() || b.Fg.Height() != img.Height() {
		return img, &DimensionMismatchError{
			FgW: b.Fg.Width(), FgH: b.Fg.Height(),
			BgW: img.Width(), BgH: img.Height(),
		}
	}
	out := New(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			out.set(x, y, b.Mode.Combine(b.Fg.At(x, y), img.At(x, y)))
		}
	}
	return out, nil
}

// Invert flips every channel: c → 255-c. Applying it twice restores
// the original image.
type Invert struct{}

func (Invert) transformation() {}

func (Invert) Apply(img *Image) (*Image, error) {
	out := New(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.At(x, y)
			out.set(x, y, Color{255 - c.R, 255 - c.G, 255 - c.B})
		}
	}
	return out, nil
}

// Grayscale replaces each pixel with the integer mean of its three
// channels (floor division), producing a neutral gray.
type Grayscale struct{}

func (Grayscale) transformation() {}

func (Grayscale) Apply(img *Image) (*Image, error) {
	out := New(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			c := img.At(x, y)
			avg := (int(c.R) + int(c.G) + int(c.B)) / 3
			out.set(x, y, NewColor(avg, avg, avg))
		}
	}
	return out, nil
}

// KernelFilter convolves a kernel across the whole image. The output
// has the same dimensions as the input; border pixels use the edge
// clamp policy of Image.Window.
type KernelFilter struct {
	Kernel Kernel
}

func (KernelFilter) transformation() {}

func (f KernelFilter) Apply(img *Image) (*Image, error) {
	out := New(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			win := img.Window(x, y, f.Kernel.Width(), f.Kernel.Height())
			out.set(x, y, f.Kernel.Convolve(win))
		}
	}
	return out, nil
}

// Noop is the identity transformation, the safe fallback for any
// unrecognized or malformed descriptor.
type Noop struct{}

func (Noop) transformation() {}

func (Noop) Apply(img *Image) (*Image, error) {
	return img, nil
}
