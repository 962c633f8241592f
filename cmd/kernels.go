package cmd

import (
	"fmt"

	"github.com/AnyUserName/pixform-cli/internal/pix"
	"github.com/AnyUserName/pixform-cli/internal/preset"
	"github.com/spf13/cobra"
)

var kernelsCmd = &cobra.Command{
	Use:   "kernels",
	Short: "List built-in convolution kernels and presets",
	Args:  cobra.NoArgs,
	RunE:  runKernels,
}

func init() {
	rootCmd.AddCommand(kernelsCmd)
}

func runKernels(_ *cobra.Command, _ []string) error {
	fmt.Println()
	fmt.Println("  Kernels:")
	for _, name := range pix.KernelNames() {
		k, ok := pix.KernelByName(name)
		if !ok {
			return fmt.Errorf("built-in kernel %q missing", name)
		}
		fmt.Printf("    %-8s %dx%d  sum=%.3f\n", name, k.Width(), k.Height(), k.Sum())
		weights := k.Weights()
		for row := 0; row < k.Height(); row++ {
			fmt.Print("      ")
			for col := 0; col < k.Width(); col++ {
				fmt.Printf("%7.3f", weights[row*k.Width()+col])
			}
			fmt.Println()
		}
	}
	fmt.Println()

	fmt.Println("  Presets:")
	for _, name := range preset.Names() {
		p, _ := preset.Get(name)
		fmt.Printf("    %-10s %-35s %v\n", p.Name, p.Description, p.Chain)
	}
	fmt.Println()
	return nil
}
