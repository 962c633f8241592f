package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AnyUserName/pixform-cli/internal/codec"
	"github.com/AnyUserName/pixform-cli/internal/session"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell [image]",
	Short: "Interactive read-eval loop over a single image",
	Long: `Starts an interactive session. Built-in commands:

  load <path>   replace the current image with a file
  save <path>   write the current image to a file
  size          print current dimensions and content fingerprint
  exit / quit   leave the shell

Any other input is treated as a transformation descriptor and applied
to the current image. Bad descriptors and out-of-range operations
print a diagnostic and leave the image unchanged; the shell never
dies on a bad command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	sess := session.New(codec.New(), os.Stderr)

	if len(args) == 1 {
		if err := sess.Load(args[0]); err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		logVerbose("loaded %s", args[0])
	}

	return runLoop(sess, os.Stdin)
}

// runLoop drives the read-eval loop. Split from runShell so tests can
// feed scripted input.
func runLoop(sess *session.Session, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		tokens := strings.Fields(line)

		if len(tokens) == 0 {
			fmt.Print("> ")
			continue
		}

		switch tokens[0] {
		case "exit", "quit":
			return nil

		case "load":
			if len(tokens) < 2 {
				fmt.Fprintln(os.Stderr, "usage: load <path>")
				break
			}
			if err := sess.Load(tokens[1]); err != nil {
				// Codec failures surface here and the loop goes on.
				fmt.Fprintf(os.Stderr, "%v\n", err)
				break
			}
			w, h, _ := sess.Size()
			fmt.Printf("loaded %s (%dx%d)\n", tokens[1], w, h)

		case "save":
			if len(tokens) < 2 {
				fmt.Fprintln(os.Stderr, "usage: save <path>")
				break
			}
			if err := sess.Save(tokens[1]); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				break
			}
			fmt.Printf("saved %s\n", tokens[1])

		case "size":
			w, h, err := sess.Size()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				break
			}
			fmt.Printf("%dx%d  #%s\n", w, h, sess.Fingerprint())

		default:
			// Everything else is a transformation descriptor.
			if err := sess.Eval(line); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
			}
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}
