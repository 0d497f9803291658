package discord

import (
	"log/slog"

	"rust-wipe-tracker/internal/adapters/discord/formatting"
	"rust-wipe-tracker/internal/adapters/metrics"
	"rust-wipe-tracker/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// Adapter publishes the bot presence. It is process wide, so the last update
// wins regardless of guild.
type Adapter struct {
	session DiscordSession
}

func NewAdapter(session DiscordSession) *Adapter {
	return &Adapter{session: session}
}

func (a *Adapter) ShowWipeCountdown(serverName string, countdown domain.Countdown) error {
	text := formatting.PresenceText(serverName, countdown)
	return a.update("countdown", discordgo.UpdateStatusData{
		Status: string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{
			{Name: text, Type: discordgo.ActivityTypeWatching},
		},
	})
}

func (a *Adapter) ClearPresence() error {
	return a.update("cleared", discordgo.UpdateStatusData{
		Status:     string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{},
	})
}

func (a *Adapter) update(kind string, data discordgo.UpdateStatusData) error {
	if err := a.session.UpdateStatusComplex(data); err != nil {
		slog.Error("Failed to update presence", "kind", kind, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues("presence", "failure").Inc()
		return err
	}

	metrics.DiscordMessagesSent.WithLabelValues("presence", "success").Inc()
	return nil
}
