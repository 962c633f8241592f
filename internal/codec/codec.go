// Package codec reads and writes image files for the transformation
// core. The core itself never touches the filesystem; it sees only
// the Load/Save contract exposed here.
package codec

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/pixform-cli/internal/pix"
	"github.com/disintegration/imaging"
)

// LoadError reports a missing or undecodable image file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Codec converts between on-disk image files and pix.Image. Encoders
// are selected per output extension from a registry probed once at
// construction.
type Codec struct {
	registry *Registry
}

// New creates a codec with all available encoders registered.
func New() *Codec {
	return &Codec{registry: NewRegistry()}
}

// Load decodes the image at path into a pix.Image. Decoding goes
// through imaging.Open, which handles EXIF orientation and the
// formats registered by the blank imports in decode.go. Alpha is
// discarded: the transformation model is 3-channel RGB.
func (c *Codec) Load(path string) (*pix.Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return FromStdImage(src)
}

// Save encodes img to path, picking the encoder by file extension.
// Unknown extensions fall back to PNG so a save never silently
// produces a file the codec cannot read back.
func (c *Codec) Save(img *pix.Image, path string) error {
	data, err := c.Encode(img, formatForPath(path), 0)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Encode serializes img in the given format at the given quality
// (0 uses the encoder default). Unavailable or unknown formats fall
// back to PNG.
func (c *Codec) Encode(img *pix.Image, format string, quality int) ([]byte, error) {
	enc := c.registry.Get(format)
	if enc == nil {
		enc = c.registry.Get("png")
	}
	if enc == nil {
		return nil, fmt.Errorf("no encoder available for %q", format)
	}
	return enc.Encode(ToStdImage(img), quality)
}

// ExtensionFor returns the file extension the codec will use when
// encoding in the given format, accounting for the PNG fallback.
func (c *Codec) ExtensionFor(format string) string {
	enc := c.registry.Get(format)
	if enc == nil {
		enc = c.registry.Get("png")
	}
	if enc == nil {
		return "png"
	}
	return enc.Extension()
}

// formatForPath derives a registry format name from a file extension.
func formatForPath(path string) string {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return format
}

// Formats returns the available output format names.
func (c *Codec) Formats() []string {
	return c.registry.Available()
}

// FromStdImage converts any stdlib image into a pix.Image, dropping
// alpha.
func FromStdImage(src image.Image) (*pix.Image, error) {
	nrgba := imaging.Clone(src)
	bounds := nrgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image has empty bounds %v", bounds)
	}

	pixels := make([]pix.Color, 0, w*h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			pixels = append(pixels, pix.Color{
				R: row[x*4],
				G: row[x*4+1],
				B: row[x*4+2],
			})
		}
	}
	return pix.FromPixels(w, h, pixels)
}

// ToStdImage converts a pix.Image into an opaque NRGBA for encoding.
func ToStdImage(img *pix.Image) *image.NRGBA {
	w, h := img.Width(), img.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(x, y)
			i := y*out.Stride + x*4
			out.Pix[i] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 255
		}
	}
	return out
}
