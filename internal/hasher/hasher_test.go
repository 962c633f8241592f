package hasher

import (
	"testing"

	"github.com/AnyUserName/pixform-cli/internal/pix"
)

func TestContentHash_LengthAndStability(t *testing.T) {
	data := []byte("pixform")
	h1 := ContentHash(data, 16)
	h2 := ContentHash(data, 16)
	if h1 != h2 {
		t.Error("hash is not deterministic")
	}
	if len(h1) != 16 {
		t.Errorf("hash length = %d, want 16", len(h1))
	}
	if ContentHash(data, 8) != h1[:8] {
		t.Error("truncation must be a prefix of the full hash")
	}
	if ContentHash([]byte("pixforn"), 16) == h1 {
		t.Error("different data produced the same hash")
	}
}

func TestImageHash(t *testing.T) {
	a, _ := pix.FromPixels(2, 2, []pix.Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 12}})
	b, _ := pix.FromPixels(2, 2, []pix.Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 12}})
	c, _ := pix.FromPixels(2, 2, []pix.Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 13}})

	if ImageHash(a, 16) != ImageHash(b, 16) {
		t.Error("identical images must hash identically")
	}
	if ImageHash(a, 16) == ImageHash(c, 16) {
		t.Error("single-channel difference not reflected in hash")
	}

	// Same pixel bytes, different shape.
	wide, _ := pix.FromPixels(4, 1, []pix.Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}, {R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 12}})
	if ImageHash(a, 16) == ImageHash(wide, 16) {
		t.Error("dimensions must be part of the fingerprint")
	}
}
