package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const OptionServerID = "server_id"

var dmPermission = false

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CmdTrack,
			Description:  "Track a Rust server's wipe schedule by its BattleMetrics ID",
			DMPermission: &dmPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        OptionServerID,
					Description: "BattleMetrics server ID",
					Required:    true,
				},
			},
		},
		{
			Name:         CmdUntrack,
			Description:  "Stop tracking the current server",
			DMPermission: &dmPermission,
		},
		{
			Name:         CmdWipe,
			Description:  "Show when the tracked server wipes next",
			DMPermission: &dmPermission,
		},
	}
}

func RegisterCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) []*discordgo.ApplicationCommand {
	registered := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		result, err := session.ApplicationCommandCreate(userID, guildID, cmd)
		if err != nil {
			slog.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registered[i] = result
		slog.Info("Registered command", "name", cmd.Name, "guild", guildID)
	}

	return registered
}

func CleanupCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := session.ApplicationCommandDelete(userID, guildID, cmd.ID); err != nil {
			slog.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
