package pix

import "fmt"

// Image is a fixed-size 2D grid of Color with a flat row-major pixel
// buffer indexed y*w+x. Images are immutable once they leave the
// package: transformations never write into an existing Image, they
// build a fresh one and hand it back.
type Image struct {
	w, h int
	pix  []Color
}

// New creates a w×h image filled with black. Panics on non-positive
// dimensions; callers construct images from validated sizes only.
func New(w, h int) *Image {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("pix: invalid image dimensions %dx%d", w, h))
	}
	return &Image{w: w, h: h, pix: make([]Color, w*h)}
}

// FromPixels builds a w×h image from a row-major pixel sequence. The
// slice is copied so the caller cannot mutate the image afterwards.
func FromPixels(w, h int, pixels []Color) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("pix: invalid image dimensions %dx%d", w, h)
	}
	if len(pixels) != w*h {
		return nil, fmt.Errorf("pix: pixel count %d does not match %dx%d", len(pixels), w, h)
	}
	img := &Image{w: w, h: h, pix: make([]Color, w*h)}
	copy(img.pix, pixels)
	return img, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.w }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.h }

// At returns the pixel at (x, y). Coordinates must be in range.
func (img *Image) At(x, y int) Color {
	return img.pix[y*img.w+x]
}

// set writes a pixel. Unexported on purpose: only transformations in
// this package may write, and only into an image they are still
// constructing.
func (img *Image) set(x, y int, c Color) {
	img.pix[y*img.w+x] = c
}

// RawPixels returns a copy of the row-major pixel buffer. Used by the
// codec and hasher collaborators; the copy keeps the image immutable.
func (img *Image) RawPixels() []Color {
	out := make([]Color, len(img.pix))
	copy(out, img.pix)
	return out
}

// Crop extracts the w×h sub-image at offset (x, y) as a new Image.
// Returns a *BoundsError when the rectangle does not fit inside the
// source; the source is never modified either way.
func (img *Image) Crop(x, y, w, h int) (*Image, error) {
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > img.w || y+h > img.h {
		return nil, &BoundsError{X: x, Y: y, W: w, H: h, ImgW: img.w, ImgH: img.h}
	}
	out := New(w, h)
	for j := 0; j < h; j++ {
		srcRow := (y + j) * img.w
		dstRow := j * w
		copy(out.pix[dstRow:dstRow+w], img.pix[srcRow+x:srcRow+x+w])
	}
	return out, nil
}

// Window extracts a w×h patch centered on (x, y) for convolution.
//
// Border policy: edge clamp. Patch coordinates that fall outside the
// image replicate the nearest edge pixel, so a kernel applied at the
// border sees the border row/column repeated rather than zeros. This
// avoids darkened edges with normalized kernels.
func (img *Image) Window(x, y, w, h int) *Window {
	win := &Window{w: w, h: h, pix: make([]Color, w*h)}
	for j := 0; j < h; j++ {
		sy := clampCoord(y+j-h/2, img.h)
		for i := 0; i < w; i++ {
			sx := clampCoord(x+i-w/2, img.w)
			win.pix[j*w+i] = img.pix[sy*img.w+sx]
		}
	}
	return win
}

// clampCoord pins v into [0, n-1].
func clampCoord(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
