package pix

import "fmt"

// BoundsError reports a crop rectangle that does not fit inside its
// source image. Recoverable: the Crop transformation reports it and
// returns the input unchanged.
type BoundsError struct {
	X, Y, W, H int
	ImgW, ImgH int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("crop rectangle %dx%d at (%d,%d) exceeds image bounds %dx%d",
		e.W, e.H, e.X, e.Y, e.ImgW, e.ImgH)
}

// DimensionMismatchError reports a blend whose foreground image does
// not match the background's dimensions. Recoverable in the same way.
type DimensionMismatchError struct {
	FgW, FgH int
	BgW, BgH int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("blend operand is %dx%d but target image is %dx%d",
		e.FgW, e.FgH, e.BgW, e.BgH)
}
