// Package descriptor turns textual transformation descriptors into
// executable pix.Transformation values. This grammar is the wire
// contract between any front-end (shell, batch, apply) and the core.
package descriptor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AnyUserName/pixform-cli/internal/pix"
)

// Loader is the slice of the codec contract the parser needs: the
// blend descriptor references a foreground image by path.
type Loader interface {
	Load(path string) (*pix.Image, error)
}

// ParseError reports a recognized command with malformed arguments.
// Genuinely unknown commands are not errors; they degrade silently.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad descriptor %q: %s", e.Input, e.Reason)
}

// Parse maps a whitespace-tokenized descriptor to a Transformation.
// The first token selects the variant:
//
//	crop <x> <y> <w> <h>
//	blend <path> <mode>      mode: transparency | multiply | screen
//	invert | grayscale | sharpen | blur | edge | emboss
//
// Parse never returns a nil Transformation. Malformed arguments to a
// known command yield Noop plus a *ParseError; a blend whose image
// cannot be loaded yields Noop plus the loader's error; an empty line
// or unknown command yields Noop with no error at all. Trailing extra
// tokens are tolerated.
func Parse(line string, loader Loader) (pix.Transformation, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return pix.Noop{}, nil
	}

	switch tokens[0] {
	case "crop":
		return parseCrop(line, tokens[1:])
	case "blend":
		return parseBlend(line, tokens[1:], loader)
	case "invert":
		return pix.Invert{}, nil
	case "grayscale":
		return pix.Grayscale{}, nil
	case "sharpen", "blur", "edge", "emboss":
		k, _ := pix.KernelByName(tokens[0])
		return pix.KernelFilter{Kernel: k}, nil
	default:
		// Unknown command: silent fallback, distinct from the
		// malformed-known-command cases above.
		return pix.Noop{}, nil
	}
}

func parseCrop(line string, args []string) (pix.Transformation, error) {
	if len(args) < 4 {
		return pix.Noop{}, &ParseError{Input: line, Reason: "crop needs 4 integer arguments"}
	}
	vals := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return pix.Noop{}, &ParseError{
				Input:  line,
				Reason: fmt.Sprintf("crop argument %q is not an integer", args[i]),
			}
		}
		vals[i] = v
	}
	return pix.Crop{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

func parseBlend(line string, args []string, loader Loader) (pix.Transformation, error) {
	if len(args) < 2 {
		return pix.Noop{}, &ParseError{Input: line, Reason: "blend needs an image path and a mode"}
	}
	if loader == nil {
		return pix.Noop{}, &ParseError{Input: line, Reason: "blend is not available without a codec"}
	}
	fg, err := loader.Load(args[0])
	if err != nil {
		return pix.Noop{}, fmt.Errorf("blend image: %w", err)
	}
	return pix.Blend{Fg: fg, Mode: pix.ParseBlendMode(args[1])}, nil
}
