package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/devfest-vale/workshop-enrollment/internal/models"
)

type Notifier interface {
	NotifyEnrollment(p *models.Participant, titles []string) error
}

// DiscordNotifier announces successful enrollments to a channel. It is
// optional; callers skip it entirely when no bot token is configured.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyEnrollment(p *models.Participant, titles []string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("🎉 **New Enrollment**\n**Participant:** %s\n**Workshops:** %s",
		p.Name,
		strings.Join(titles, ", "),
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
