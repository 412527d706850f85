package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Enrollment statistics reports",
}

var statsSexCmd = &cobra.Command{
	Use:   "sex",
	Short: "Participant percentage by sex",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := reg.StatsBySex()
		if len(stats) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No participants registered")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Masculino: %.1f%%\n", stats["Masculino"])
		fmt.Fprintf(cmd.OutOrStdout(), "Feminino:  %.1f%%\n", stats["Feminino"])
		return nil
	},
}

var statsWorkshopsCmd = &cobra.Command{
	Use:   "workshops",
	Short: "Occupied seats per workshop",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := reg.StatsByWorkshop()
		for _, title := range sortedTitles(stats) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %d\n", title, stats[title])
		}
		return nil
	},
}

var statsAgeCmd = &cobra.Command{
	Use:   "age",
	Short: "Minor/adult percentage per workshop",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := referenceDate()
		if err != nil {
			return err
		}

		stats := reg.StatsByAgeBracket(ref)
		titles := make([]string, 0, len(stats))
		for title := range stats {
			titles = append(titles, title)
		}
		sort.Strings(titles)

		for _, title := range titles {
			brackets := stats[title]
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s: %.1f%% | %s: %.1f%%\n",
				title,
				models.BracketMinor, brackets[models.BracketMinor.String()],
				models.BracketAdult, brackets[models.BracketAdult.String()])
		}
		return nil
	},
}

func sortedTitles(m map[string]int) []string {
	titles := make([]string, 0, len(m))
	for title := range m {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

func init() {
	statsCmd.AddCommand(statsSexCmd)
	statsCmd.AddCommand(statsWorkshopsCmd)
	statsCmd.AddCommand(statsAgeCmd)
	rootCmd.AddCommand(statsCmd)
}
