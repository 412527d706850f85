// Package cli is the presentation layer: cobra commands that drive the
// registry's public operations and render their results as text.
package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/devfest-vale/workshop-enrollment/internal/config"
	"github.com/devfest-vale/workshop-enrollment/internal/models"
	"github.com/devfest-vale/workshop-enrollment/internal/notifier"
	"github.com/devfest-vale/workshop-enrollment/internal/registry"
	"github.com/devfest-vale/workshop-enrollment/internal/storage"
)

var (
	cfg             *config.Config
	reg             *registry.Registry
	workshopStore   *storage.WorkshopStore
	participantFile *storage.ParticipantFile
	enrollNotifier  notifier.Notifier

	refDateFlag string
)

var rootCmd = &cobra.Command{
	Use:               "enroll",
	Short:             "Manage workshop enrollments",
	Long:              `Register participants into capacity-limited workshops, query seat availability, and produce enrollment statistics.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&refDateFlag, "ref", "",
		"reference date for age calculations (dd/mm/yyyy, default: today)")
}

func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and persisted state before any command
// runs. Tests inject a registry directly and skip all of it.
func setup(cmd *cobra.Command, args []string) error {
	if reg != nil {
		return nil
	}

	cfg = config.LoadConfig()

	store, err := storage.OpenWorkshopStore(cfg.WorkshopsDBPath)
	if err != nil {
		return fmt.Errorf("open workshop store: %w", err)
	}
	workshopStore = store

	workshops, err := workshopStore.Load()
	if err != nil {
		return fmt.Errorf("load workshops: %w", err)
	}

	participantFile = &storage.ParticipantFile{Path: cfg.ParticipantsPath}
	participants, err := participantFile.Load()
	if err != nil {
		return fmt.Errorf("load participants: %w", err)
	}

	// The two fallbacks are independent: an empty workshop store means
	// the default set, but participants already loaded stay loaded.
	if len(workshops) == 0 {
		log.Printf("No persisted workshops found, starting with the default set")
		workshops = registry.DefaultWorkshops(cfg.DefaultSeats)
	}
	reg = registry.New(workshops, participants)

	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			enrollNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordAnnounceChannelID)
		}
	}

	return nil
}

// referenceDate resolves the --ref flag, defaulting to today.
func referenceDate() (time.Time, error) {
	if refDateFlag == "" {
		return time.Now(), nil
	}
	ref, err := time.Parse(models.DateLayout, refDateFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad reference date %q: expected dd/mm/yyyy", refDateFlag)
	}
	return ref, nil
}

// saveAll flushes both collections through their adapters. Commands
// call it after every successful mutation.
func saveAll() error {
	if workshopStore != nil {
		if err := workshopStore.Save(reg.Workshops()); err != nil {
			return fmt.Errorf("save workshops: %w", err)
		}
	}
	if participantFile != nil {
		if err := participantFile.Save(reg.Participants()); err != nil {
			return fmt.Errorf("save participants: %w", err)
		}
	}
	return nil
}
