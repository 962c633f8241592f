package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AnyUserName/pixform-cli/internal/pipeline"
	"github.com/AnyUserName/pixform-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchChain   []string
	batchPreset  string
	batchOutDir  string
	batchFormat  string
	batchQuality int
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <input_dir>",
	Short: "Apply a transformation chain to every image in a directory",
	Long: `Scans the input directory for images (png, jpg, jpeg, webp, gif,
bmp, tiff), applies the descriptor chain to each, and writes
content-addressed outputs plus a pixform.report.json:

  <key>.<w>.<h>.<hash8>.<ext>

Files are processed in parallel; each image's chain runs sequentially,
so every output is reproducible bit for bit.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringArrayVarP(&batchChain, "transform", "t", nil, "transformation descriptor (repeatable, applied in order)")
	batchCmd.Flags().StringVar(&batchPreset, "preset", "", "named preset chain")
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "./pixform_out", "output directory")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "output format (png, jpeg, bmp, tiff, webp; default: keep source format)")
	batchCmd.Flags().IntVarP(&batchQuality, "quality", "q", 0, "quality 1-100 (0 = encoder default)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	chain, err := resolveChain(batchPreset, batchChain)
	if err != nil {
		return err
	}

	// Resolve absolute paths.
	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(batchOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	logVerbose("input:  %s", absInput)
	logVerbose("output: %s", absOutput)
	logVerbose("chain:  %v", chain)

	// Create output dir.
	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Run pipeline.
	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Chain:     chain,
		Format:    batchFormat,
		Quality:   batchQuality,
		Workers:   batchWorkers,
		Verbose:   verbose,
	})

	rep, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	// Write report.
	reportPath := filepath.Join(absOutput, "pixform.report.json")
	if err := report.WriteJSON(rep, reportPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printBatchReport(rep, time.Since(start))
	return nil
}

func printBatchReport(rep *report.Report, elapsed time.Duration) {
	s := rep.Stats
	fmt.Println()
	fmt.Printf("  Images:      %d\n", s.TotalInputs)
	if s.Failed > 0 {
		fmt.Printf("  Failed:      %d\n", s.Failed)
	}
	fmt.Printf("  Chain:       %v\n", rep.Chain)
	fmt.Printf("  Input size:  %s\n", formatBytes(s.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(s.TotalOutputBytes))
	if s.TotalInputBytes > 0 {
		ratio := float64(s.TotalOutputBytes) / float64(s.TotalInputBytes) * 100
		fmt.Printf("  Ratio:       %.1f%% of original\n", ratio)
	}
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Report:      pixform.report.json\n")
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
