package cmd

import (
	"fmt"

	"github.com/AnyUserName/pixform-cli/internal/codec"
	"github.com/AnyUserName/pixform-cli/internal/preset"
	"github.com/AnyUserName/pixform-cli/internal/session"
	"github.com/spf13/cobra"
)

var (
	applyChain  []string
	applyPreset string
	applyOut    string
)

var applyCmd = &cobra.Command{
	Use:   "apply <input>",
	Short: "Apply a transformation chain to one image and save it",
	Long: `Loads an image, applies the given descriptors in order, and writes
the result. Descriptors use the shell grammar:

  pixform apply photo.jpg -t "crop 0 0 800 600" -t sharpen -o out.png

Recoverable errors (bad descriptor, out-of-bounds crop, blend size
mismatch) print a diagnostic and leave that step as a no-op; the
remaining chain still runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringArrayVarP(&applyChain, "transform", "t", nil, "transformation descriptor (repeatable, applied in order)")
	applyCmd.Flags().StringVar(&applyPreset, "preset", "", "named preset chain (see 'pixform kernels' for filter names)")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "output path (default: overwrite input)")
	rootCmd.AddCommand(applyCmd)
}

// resolveChain merges an optional preset with explicit descriptors;
// the preset runs first.
func resolveChain(presetName string, explicit []string) ([]string, error) {
	var chain []string
	if presetName != "" {
		p, ok := preset.Get(presetName)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (have: %v)", presetName, preset.Names())
		}
		chain = append(chain, p.Chain...)
	}
	chain = append(chain, explicit...)
	if len(chain) == 0 {
		return nil, fmt.Errorf("no transformations given: use -t or --preset")
	}
	return chain, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := applyOut
	if output == "" {
		output = input
	}

	chain, err := resolveChain(applyPreset, applyChain)
	if err != nil {
		return err
	}

	sess := session.New(codec.New(), cmd.ErrOrStderr())
	if err := sess.Load(input); err != nil {
		return err
	}
	w, h, _ := sess.Size()
	logVerbose("loaded %s (%dx%d)", input, w, h)

	for _, line := range chain {
		if err := sess.Eval(line); err != nil {
			return fmt.Errorf("apply %q: %w", line, err)
		}
		logVerbose("applied %q", line)
	}

	if err := sess.Save(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	w, h, _ = sess.Size()
	fmt.Printf("%s → %s (%dx%d, #%s)\n", input, output, w, h, sess.Fingerprint())
	return nil
}
