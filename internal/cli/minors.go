package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var minorsCmd = &cobra.Command{
	Use:   "minors <workshop-title>",
	Short: "List minors enrolled in a workshop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := referenceDate()
		if err != nil {
			return err
		}

		names := reg.MinorsIn(args[0], ref)
		if len(names) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No minors enrolled in %q\n", args[0])
			return nil
		}

		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(minorsCmd)
}
