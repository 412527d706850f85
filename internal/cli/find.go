package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <national-id>",
	Short: "Look up a participant's enrollment by national ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := referenceDate()
		if err != nil {
			return err
		}

		summary, ok := reg.FindByIdentity(args[0], ref)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No participant with national ID %s\n", args[0])
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Name: %s | Sex: %s | Age bracket: %s | Workshops: %s\n",
			summary.Name, summary.Sex, summary.Bracket,
			strings.Join(summary.Workshops, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
