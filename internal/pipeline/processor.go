package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/pixform-cli/internal/codec"
	"github.com/AnyUserName/pixform-cli/internal/descriptor"
	"github.com/AnyUserName/pixform-cli/internal/hasher"
	"github.com/AnyUserName/pixform-cli/internal/report"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key   string
	entry report.Entry
	err   error
}

// processImage handles a single source image: load, apply the
// descriptor chain in order, encode, write a content-addressed file.
//
// Recoverable transformation errors (bad crop rectangle, blend size
// mismatch) degrade to the unchanged image with a warning, matching
// the interactive shell. Only load/encode/write failures fail the
// image.
func processImage(src Source, cfg Config, cdc *codec.Codec) processResult {
	result := processResult{key: src.Key}

	img, err := cdc.Load(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("load %s: %w", src.RelPath, err)
		return result
	}
	origW, origH := img.Width(), img.Height()

	for _, line := range cfg.Chain {
		tr, err := descriptor.Parse(line, cdc)
		if err != nil {
			// Parse diagnostics and blend-load failures both degrade
			// to Noop here; a batch should not die on one bad
			// descriptor when the shell would not.
			fmt.Fprintf(os.Stderr, "[pixform] warn: %s: %v\n", src.Key, err)
		}
		out, err := tr.Apply(img)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[pixform] warn: %s: %v\n", src.Key, err)
		}
		img = out
	}

	// Encode in the configured format, defaulting to the source's.
	format := cfg.Format
	if format == "" {
		format = src.Format
	}
	data, err := cdc.Encode(img, format, cfg.Quality)
	if err != nil {
		result.err = fmt.Errorf("encode %s: %w", src.RelPath, err)
		return result
	}

	// Content hash for filename.
	contentHash := hasher.ContentHash(data, 16)

	// Ensure output subdirectory exists.
	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755)
	}

	// Build filename: key.w.h.hash.ext
	fileName := fmt.Sprintf("%s.%d.%d.%s.%s",
		filepath.Base(src.Key), img.Width(), img.Height(), contentHash[:8],
		cdc.ExtensionFor(format))
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

	outPath := filepath.Join(cfg.OutputDir, relPath)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		result.err = fmt.Errorf("write %s: %w", relPath, err)
		return result
	}

	result.entry = report.Entry{
		Source: report.Source{
			Path:   src.RelPath,
			Format: src.Format,
			Width:  origW,
			Height: origH,
			Size:   src.Size,
		},
		Output: report.Output{
			Path:   relPath,
			Format: cdc.ExtensionFor(format),
			Width:  img.Width(),
			Height: img.Height(),
			Size:   int64(len(data)),
			Hash:   contentHash,
		},
	}
	return result
}
