package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/diskscope/internal/integration"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Output the shell integration script",
	Long: `Prints a zsh snippet that wraps diskscope with fzf for interactively
picking among the largest files of a scan. Add to your shell with:

    eval "$(diskscope init)"`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		rendered, err := integration.Render()
		if err != nil {
			return fmt.Errorf("rendering integration script: %w", err)
		}

		fmt.Println(rendered)

		return nil
	},
}
