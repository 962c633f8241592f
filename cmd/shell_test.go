package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/pixform-cli/internal/codec"
	"github.com/AnyUserName/pixform-cli/internal/pix"
	"github.com/AnyUserName/pixform-cli/internal/session"
)

func TestRunLoop_Script(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "black.png")
	outPath := filepath.Join(dir, "white.png")

	cdc := codec.New()
	if err := cdc.Save(pix.New(4, 4), inPath); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	script := fmt.Sprintf("load %s\nsize\ninvert\nxyzzy\ncrop bad args\nsave %s\nexit\n", inPath, outPath)
	sess := session.New(cdc, io.Discard)

	if err := runLoop(sess, strings.NewReader(script)); err != nil {
		t.Fatalf("runLoop: %v", err)
	}

	out, err := cdc.Load(outPath)
	if err != nil {
		t.Fatalf("load output: %v", err)
	}
	if out.Width() != 4 || out.Height() != 4 {
		t.Fatalf("output dims %dx%d", out.Width(), out.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if out.At(x, y) != (pix.Color{R: 255, G: 255, B: 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, out.At(x, y))
			}
		}
	}
}

func TestRunLoop_SurvivesBadInput(t *testing.T) {
	// No image loaded: every command should produce a diagnostic and
	// the loop must still reach exit without an error.
	sess := session.New(codec.New(), io.Discard)
	script := "size\ninvert\nsave /nonexistent/x.png\nload /nonexistent/y.png\nexit\n"
	if err := runLoop(sess, strings.NewReader(script)); err != nil {
		t.Fatalf("runLoop: %v", err)
	}
}
