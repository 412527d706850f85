package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var seatsCmd = &cobra.Command{
	Use:   "seats",
	Short: "Show available seats per workshop",
	RunE: func(cmd *cobra.Command, args []string) error {
		seats := reg.AvailableSeats()

		titles := make([]string, 0, len(seats))
		for title := range seats {
			titles = append(titles, title)
		}
		sort.Strings(titles)

		for _, title := range titles {
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %d\n", title, seats[title])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seatsCmd)
}
