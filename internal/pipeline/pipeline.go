// Package pipeline runs a descriptor chain over every image in a
// directory. File-level work is parallel; each image's transformation
// chain runs strictly sequentially, so per-image output stays
// bit-for-bit reproducible.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/pixform-cli/internal/codec"
	"github.com/AnyUserName/pixform-cli/internal/report"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Chain     []string // transformation descriptors, applied in order
	Format    string   // output format; "" keeps each source's format
	Quality   int      // encode quality (0 = encoder default)
	Workers   int
	Verbose   bool
}

// Pipeline orchestrates batch image transformation.
type Pipeline struct {
	cfg Config
	cdc *codec.Codec
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg: cfg,
		cdc: codec.New(),
	}
}

// Run executes the batch and returns the report.
func (p *Pipeline) Run() (*report.Report, error) {
	// Step 1: Scan for images.
	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[pixform] found %d images\n", len(sources))
	}

	// Step 2: Process images in parallel. The chain inside each
	// image stays sequential.
	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[pixform] processing: %s\n", s.Key)
			}

			results[idx] = processImage(s, p.cfg, p.cdc)
		}(i, src)
	}
	wg.Wait()

	// Step 3: Collect results into the report.
	rep := report.New(p.cfg.Chain)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		rep.Entries[r.key] = r.entry
	}

	// Report errors but don't fail the entire batch for partial
	// failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[pixform] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[pixform] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	rep.Stats.Failed = len(errs)
	rep.ComputeStats()
	return rep, nil
}
