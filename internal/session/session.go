// Package session holds the state of an interactive editing session:
// the currently loaded image and the codec it came from. The state is
// an explicit value passed to the front-end, never a package-level
// global.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/AnyUserName/pixform-cli/internal/codec"
	"github.com/AnyUserName/pixform-cli/internal/descriptor"
	"github.com/AnyUserName/pixform-cli/internal/hasher"
	"github.com/AnyUserName/pixform-cli/internal/pix"
)

// Codec is the collaborator contract a session needs: load an image
// file, save one back.
type Codec interface {
	Load(path string) (*pix.Image, error)
	Save(img *pix.Image, path string) error
}

var _ Codec = (*codec.Codec)(nil)

// Session is one user's editing state. The current image is replaced
// wholesale by every transformation; it is never mutated in place, so
// a display holding the previous image keeps a consistent view.
type Session struct {
	codec Codec
	diag  io.Writer // recoverable-error diagnostics land here
	img   *pix.Image
}

// New creates an empty session. diag receives diagnostics for
// recovered transformation errors; pass io.Discard to silence them.
func New(c Codec, diag io.Writer) *Session {
	return &Session{codec: c, diag: diag}
}

// Load replaces the current image with the file at path. Codec
// failures propagate to the caller; the current image is kept on
// failure.
func (s *Session) Load(path string) error {
	img, err := s.codec.Load(path)
	if err != nil {
		return err
	}
	s.img = img
	return nil
}

// Save writes the current image to path.
func (s *Session) Save(path string) error {
	if s.img == nil {
		return fmt.Errorf("no image loaded")
	}
	return s.codec.Save(s.img, path)
}

// Current returns the currently loaded image, or nil before the first
// load.
func (s *Session) Current() *pix.Image {
	return s.img
}

// Size returns the current image dimensions.
func (s *Session) Size() (w, h int, err error) {
	if s.img == nil {
		return 0, 0, fmt.Errorf("no image loaded")
	}
	return s.img.Width(), s.img.Height(), nil
}

// Fingerprint returns a 16-hex-char content hash of the current
// image's pixels, or the empty string before the first load.
func (s *Session) Fingerprint() string {
	if s.img == nil {
		return ""
	}
	return hasher.ImageHash(s.img, 16)
}

// Eval parses line as a transformation descriptor and applies it to
// the current image, replacing it with the result.
//
// Recoverable errors — malformed descriptors, out-of-bounds crops,
// blend size mismatches — are written to the diagnostics writer and
// do NOT fail Eval; the image survives unchanged and the session
// keeps going. Only codec failures (the blend image could not be
// loaded) propagate as errors.
func (s *Session) Eval(line string) error {
	if s.img == nil {
		return fmt.Errorf("no image loaded")
	}

	tr, err := descriptor.Parse(line, s.codec)
	if err != nil {
		var pe *descriptor.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(s.diag, "%v\n", err)
			err = nil
		} else {
			return err // codec failure crossing the core boundary
		}
	}

	out, err := tr.Apply(s.img)
	if err != nil {
		// Core transformation errors are recovered locally: report
		// and keep the (returned, unchanged) image.
		fmt.Fprintf(s.diag, "%v\n", err)
	}
	s.img = out
	return nil
}
