package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

var (
	registerName      string
	registerID        string
	registerSex       string
	registerBirth     string
	registerWorkshops []string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a participant into 1-3 workshops",
	Long: `Register a new participant and enroll them into the chosen workshops.

The enrollment is transactional: every chosen workshop is checked for a
free seat before anything is committed, so a full workshop later in the
list never leaves the participant half-enrolled.

Examples:
  enroll register --name "Ana Souza" --id 12345678900 --sex Feminino \
    --birth 15/03/2008 --workshop jQuery --workshop Arduino`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "participant name (required)")
	registerCmd.Flags().StringVar(&registerID, "id", "", "national ID, must be unique (required)")
	registerCmd.Flags().StringVar(&registerSex, "sex", "", "participant sex")
	registerCmd.Flags().StringVar(&registerBirth, "birth", "", "birth date, dd/mm/yyyy (required)")
	registerCmd.Flags().StringArrayVarP(&registerWorkshops, "workshop", "w", nil,
		"workshop title to enroll in (repeat for up to 3)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("id")
	registerCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	birth, err := time.Parse(models.DateLayout, registerBirth)
	if err != nil {
		return fmt.Errorf("bad birth date %q: expected dd/mm/yyyy", registerBirth)
	}

	ref, err := referenceDate()
	if err != nil {
		return err
	}

	p := &models.Participant{
		Name:       registerName,
		NationalID: registerID,
		Sex:        registerSex,
		BirthDate:  birth,
	}

	if err := reg.Register(p, registerWorkshops, ref); err != nil {
		return err
	}

	if err := saveAll(); err != nil {
		return err
	}

	if enrollNotifier != nil {
		if err := enrollNotifier.NotifyEnrollment(p, registerWorkshops); err != nil {
			log.Printf("Enrollment announcement failed: %v", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Registered %s into %d workshop(s)\n", p.Name, len(registerWorkshops))
	return nil
}
