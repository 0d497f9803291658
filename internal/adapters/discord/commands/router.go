package commands

import (
	"context"
	"log/slog"
	"time"

	"rust-wipe-tracker/internal/adapters/metrics"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

const commandTimeout = 30 * time.Second

type CommandHandler func(ctx context.Context, guildID string, args []string) Reply

// Router dispatches both slash commands and prefixed chat messages to the
// same handlers.
type Router struct {
	prefix string
	routes map[string]CommandHandler
}

func NewRouter(prefix string) *Router {
	slog.Info("Router initialized", "prefix", prefix)
	return &Router{
		prefix: prefix,
		routes: make(map[string]CommandHandler),
	}
}

func (r *Router) Register(name string, handler CommandHandler) {
	r.routes[name] = handler
}

func (r *Router) Handle(s DiscordSession, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	handler, ok := r.routes[data.Name]
	if !ok {
		slog.Warn("No handler found for command", "name", data.Name)
		return
	}

	// BattleMetrics can take longer than the interaction acknowledgement window.
	if err := deferResponse(s, i); err != nil {
		slog.Error("Failed to acknowledge interaction", "name", data.Name, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues("interaction", "failure").Inc()
		return
	}

	var args []string
	if id := getStringOption(data.Options, OptionServerID); id != "" {
		args = append(args, id)
	}

	reply := r.invoke(data.Name, i.GuildID, args, handler)
	if err := editResponse(s, i, reply); err != nil {
		slog.Error("Failed to send interaction reply", "name", data.Name, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues("interaction", "failure").Inc()
		return
	}
	metrics.DiscordMessagesSent.WithLabelValues("interaction", "success").Inc()
}

func (r *Router) HandleMessage(s DiscordSession, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	name, args, ok := parsePrefixed(m.Content, r.prefix)
	if !ok {
		return
	}
	handler, ok := r.routes[name]
	if !ok {
		return
	}

	reply := r.invoke(name, m.GuildID, args, handler)
	if err := sendMessage(s, m, reply); err != nil {
		slog.Error("Failed to send message reply", "name", name, "channel_id", m.ChannelID, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues("message", "failure").Inc()
		return
	}
	metrics.DiscordMessagesSent.WithLabelValues("message", "success").Inc()
}

func (r *Router) invoke(name, guildID string, args []string, handler CommandHandler) Reply {
	invocationID := uuid.NewString()
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	reply := handler(ctx, guildID, args)

	metrics.CommandInvocations.WithLabelValues(name, reply.Outcome).Inc()
	slog.Info("Command handled",
		"invocation_id", invocationID,
		"command", name,
		"guild_id", guildID,
		"outcome", reply.Outcome,
		"duration", time.Since(start),
	)
	return reply
}

func (r *Router) HandleFunc() func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		r.Handle(s, i)
	}
}

func (r *Router) MessageHandlerFunc() func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		r.HandleMessage(s, m)
	}
}
