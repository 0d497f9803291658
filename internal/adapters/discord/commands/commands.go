package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"rust-wipe-tracker/internal/adapters/discord/formatting"
	"rust-wipe-tracker/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	CmdTrack   = "track"
	CmdUntrack = "untrack"
	CmdWipe    = "wipe"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Reply is what a command answers with, independent of whether it arrived
// as a slash command or a prefixed chat message.
type Reply struct {
	Content string
	Embed   *discordgo.MessageEmbed
	Outcome string
}

func rejected(content string) Reply { return Reply{Content: content, Outcome: OutcomeRejected} }
func failed(content string) Reply   { return Reply{Content: content, Outcome: OutcomeFailed} }

type BotHandler struct {
	Prefix  string
	Service Tracker
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("Rust Wipe Tracker is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

func (h *BotHandler) Track(ctx context.Context, guildID string, args []string) Reply {
	if guildID == "" {
		return rejected(formatting.MsgGuildOnly)
	}
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return rejected(formatting.MsgTrackUsage(h.Prefix))
	}

	info, err := h.Service.Track(ctx, guildID, args[0])
	switch {
	case err == nil:
		return Reply{Embed: formatting.TrackEmbed(info), Outcome: OutcomeSuccess}
	case errors.Is(err, domain.ErrConfigurationMissing):
		return failed(formatting.MsgTokenMissing)
	case errors.Is(err, domain.ErrServerNotFound):
		return rejected(formatting.MsgServerNotFound)
	default:
		slog.Error("Failed to track server", "guild_id", guildID, "server_id", args[0], "error", err)
		return failed(formatting.MsgSaveError)
	}
}

func (h *BotHandler) Untrack(ctx context.Context, guildID string, _ []string) Reply {
	if guildID == "" {
		return rejected(formatting.MsgGuildOnly)
	}

	removed, err := h.Service.Untrack(ctx, guildID)
	if err != nil {
		slog.Error("Failed to untrack server", "guild_id", guildID, "error", err)
		return failed(formatting.MsgSaveError)
	}
	if !removed {
		return rejected(formatting.MsgNothingTracked)
	}
	return Reply{Content: formatting.MsgUntrackSuccess, Outcome: OutcomeSuccess}
}

func (h *BotHandler) Wipe(ctx context.Context, guildID string, _ []string) Reply {
	if guildID == "" {
		return rejected(formatting.MsgGuildOnly)
	}

	report, err := h.Service.WipeReport(ctx, guildID)
	switch {
	case err == nil:
		return Reply{Embed: formatting.WipeEmbed(report), Outcome: OutcomeSuccess}
	case errors.Is(err, domain.ErrNotTracked):
		return rejected(formatting.MsgNotTracked(h.Prefix))
	case errors.Is(err, domain.ErrConfigurationMissing):
		return failed(formatting.MsgTokenMissing)
	case errors.Is(err, domain.ErrWipeUnknown):
		return failed(formatting.MsgWipeUnknown)
	default:
		slog.Warn("Failed to build wipe report", "guild_id", guildID, "error", err)
		return failed(formatting.MsgFetchFailed)
	}
}
