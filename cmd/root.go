package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pixform",
	Short: "Composable raster image transformations from the command line",
	Long: `pixform — applies chains of named transformations (crop, blend,
invert, grayscale, convolution filters) to raster images.

Transformations are selected by textual descriptors, the same grammar
in the interactive shell and the batch commands:

  crop <x> <y> <w> <h>
  blend <path> <transparency|multiply|screen>
  invert | grayscale | sharpen | blur | edge | emboss`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pixform %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[pixform] "+format+"\n", args...)
	}
}
