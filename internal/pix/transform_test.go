package pix

import (
	"errors"
	"testing"
)

func imagesEqual(a, b *Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}

func TestCrop_Apply(t *testing.T) {
	src := gradientImage(10, 8)
	out, err := Crop{X: 1, Y: 2, W: 4, H: 3}.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Width() != 4 || out.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", out.Width(), out.Height())
	}
	if out.At(0, 0) != src.At(1, 2) {
		t.Error("crop offset wrong")
	}
}

func TestCrop_Apply_OutOfBoundsReturnsInput(t *testing.T) {
	src := gradientImage(10, 8)
	out, err := Crop{X: 7, Y: 0, W: 5, H: 5}.Apply(src)
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BoundsError, got %v", err)
	}
	if out != src {
		t.Error("out-of-bounds crop must return the input image itself")
	}
}

func TestBlend_Apply_NoBlendYieldsForeground(t *testing.T) {
	bg := gradientImage(6, 6)
	fg := gradientImage(6, 6)
	fgInv, _ := Invert{}.Apply(fg)

	out, err := Blend{Fg: fgInv, Mode: NoBlend()}.Apply(bg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !imagesEqual(out, fgInv) {
		t.Error("NoBlend blend should reproduce the foreground image")
	}
	if out == fgInv {
		t.Error("blend must build a fresh image, not alias the foreground")
	}
}

func TestBlend_Apply_DimensionMismatchReturnsInput(t *testing.T) {
	bg := gradientImage(6, 6)
	fg := gradientImage(6, 5)

	out, err := Blend{Fg: fg, Mode: Multiply()}.Apply(bg)
	var dm *DimensionMismatchError
	if !errors.As(err, &dm) {
		t.Fatalf("expected *DimensionMismatchError, got %v", err)
	}
	if out != bg {
		t.Error("mismatched blend must return the input image itself")
	}
	if dm.FgW != 6 || dm.FgH != 5 || dm.BgW != 6 || dm.BgH != 6 {
		t.Errorf("error fields: %+v", dm)
	}
}

func TestBlend_Apply_Multiply(t *testing.T) {
	bg, _ := FromPixels(1, 1, []Color{{128, 255, 10}})
	fg, _ := FromPixels(1, 1, []Color{{128, 0, 255}})
	out, err := Blend{Fg: fg, Mode: Multiply()}.Apply(bg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := Color{64, 0, 10}
	if out.At(0, 0) != want {
		t.Errorf("blended pixel = %v, want %v", out.At(0, 0), want)
	}
}

func TestInvert_Involution(t *testing.T) {
	src := gradientImage(7, 5)
	once, err := Invert{}.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	twice, err := Invert{}.Apply(once)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !imagesEqual(twice, src) {
		t.Error("double inversion must restore the original image")
	}
	if imagesEqual(once, src) {
		t.Error("single inversion left the image unchanged")
	}
}

func TestInvert_BlackToWhite(t *testing.T) {
	src := New(4, 4)
	out, err := Invert{}.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("dimensions changed: %dx%d", out.Width(), out.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.At(x, y) != (Color{255, 255, 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, out.At(x, y))
			}
		}
	}
}

func TestGrayscale_Apply(t *testing.T) {
	src, _ := FromPixels(2, 1, []Color{
		{255, 0, 0},  // pure red: (255+0+0)/3 = 85
		{10, 20, 33}, // (10+20+33)/3 = 21 (floor)
	})
	out, err := Grayscale{}.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.At(0, 0) != (Color{85, 85, 85}) {
		t.Errorf("red pixel = %v, want (85,85,85)", out.At(0, 0))
	}
	if out.At(1, 0) != (Color{21, 21, 21}) {
		t.Errorf("pixel = %v, want (21,21,21)", out.At(1, 0))
	}
}

func TestKernelFilter_IdentityPreservesImage(t *testing.T) {
	identity := mustKernel(3, 3, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0})
	src := gradientImage(6, 4)
	out, err := KernelFilter{Kernel: identity}.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !imagesEqual(out, src) {
		t.Error("identity kernel changed the image")
	}
}

func TestKernelFilter_OutputDimensions(t *testing.T) {
	blur, _ := KernelByName("blur")
	src := gradientImage(9, 7)
	out, err := KernelFilter{Kernel: blur}.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Width() != 9 || out.Height() != 7 {
		t.Errorf("dimensions: got %dx%d, want 9x7", out.Width(), out.Height())
	}
}

func TestKernelFilter_BlurFlatImageIsIdentity(t *testing.T) {
	// A normalized kernel over a constant image reproduces the
	// constant everywhere, including the clamped border.
	blur, _ := KernelByName("blur")
	flat, _ := FromPixels(5, 5, fillColors(25, Color{40, 90, 200}))
	out, err := KernelFilter{Kernel: blur}.Apply(flat)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !imagesEqual(out, flat) {
		t.Error("blur over a flat image must be the identity")
	}
}

func TestKernelFilter_EdgeFlatImageIsBlack(t *testing.T) {
	// Zero-sum kernel over a constant image cancels everywhere, even
	// at borders thanks to edge clamping.
	edge, _ := KernelByName("edge")
	flat, _ := FromPixels(5, 5, fillColors(25, Color{77, 140, 203}))
	out, err := KernelFilter{Kernel: edge}.Apply(flat)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	black := New(5, 5)
	if !imagesEqual(out, black) {
		t.Error("edge kernel over a flat image must be all black")
	}
}

func TestKernelFilter_EmbossSaturates(t *testing.T) {
	// Emboss weight sum is 1, so on a flat white image every output
	// channel is 255 after saturation; on flat black it stays 0.
	emboss, _ := KernelByName("emboss")

	white, _ := FromPixels(3, 3, fillColors(9, Color{255, 255, 255}))
	out, err := KernelFilter{Kernel: emboss}.Apply(white)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.At(1, 1) != (Color{255, 255, 255}) {
		t.Errorf("emboss on white = %v, want white", out.At(1, 1))
	}

	blackOut, err := KernelFilter{Kernel: emboss}.Apply(New(3, 3))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if blackOut.At(1, 1) != (Color{0, 0, 0}) {
		t.Errorf("emboss on black = %v, want black", blackOut.At(1, 1))
	}
}

func TestNoop_ReturnsInput(t *testing.T) {
	src := gradientImage(3, 3)
	out, err := Noop{}.Apply(src)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out != src {
		t.Error("Noop must return the input image itself")
	}
}

func fillColors(n int, c Color) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}
