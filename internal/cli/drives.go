package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idelchi/diskscope/internal/drives"
)

var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "Report mounted drives and their usage",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := validateOutput(); err != nil {
			return err
		}

		list, err := drives.List()
		if err != nil {
			return err
		}

		if output == "json" {
			return PrintJSON(list, os.Stdout)
		}

		if len(list) == 0 {
			fmt.Println("No drives found.")

			return nil
		}

		return PrintDrives(list, os.Stdout)
	},
}
