package formatting

import (
	"fmt"
	"strconv"
	"time"

	"rust-wipe-tracker/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MsgGuildOnly      = "This command can only be used in a server."
	MsgTokenMissing   = "❌ Battlemetrics API token not configured. Please set BATTLEMETRICS_TOKEN in .env file."
	MsgServerNotFound = "❌ Could not find server with that ID. Please check the Battlemetrics ID and try again."
	MsgSaveError      = "❌ Failed to save tracking configuration."
	MsgUntrackSuccess = "✅ Server tracking stopped."
	MsgNothingTracked = "❌ No server is currently being tracked."
	MsgFetchFailed    = "❌ Could not fetch server information. Please try again later."
	MsgWipeUnknown    = "❌ Could not determine next wipe time for this server."
	MsgWipeOverdue    = "The wipe is overdue."
)

const (
	ColorTracked = 0x2ecc71
	ColorWipe    = 0xe67e22

	DateFormat = "January 02, 2006"
	TimeFormat = "15:04 MST"
)

var printer = message.NewPrinter(language.English)

func MsgTrackUsage(prefix string) string {
	return fmt.Sprintf("Usage: `%strack <server_id>`", prefix)
}

func MsgNotTracked(prefix string) string {
	return fmt.Sprintf("❌ No server is currently being tracked. Use `%strack <server_id>` to start tracking a server.", prefix)
}

func TrackEmbed(info *domain.ServerInfo) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Server Tracking Started",
		Description: "Now tracking wipe times for: " + info.Name,
		Color:       ColorTracked,
		Footer:      &discordgo.MessageEmbedFooter{Text: "BattleMetrics ID: " + info.ID},
	}
}

func WipeEmbed(report *domain.WipeReport) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Next Wipe for " + report.Server.Name,
		Description: fmt.Sprintf("The next wipe will occur on %s at %s",
			report.NextWipe.Format(DateFormat), report.NextWipe.Format(TimeFormat)),
		Color: ColorWipe,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Time Remaining", Value: Countdown(report.Remaining), Inline: false},
			{Name: "Players", Value: Players(report.Server.Players, report.Server.MaxPlayers), Inline: true},
		},
		Timestamp: report.NextWipe.Format(time.RFC3339),
	}
}

// Countdown renders the long form used in command replies.
func Countdown(c domain.Countdown) string {
	if c.Overdue {
		return MsgWipeOverdue
	}
	return fmt.Sprintf("%d days, %d hours, and %d minutes", c.Days, c.Hours, c.Minutes)
}

// PresenceText renders the short form shown as the bot activity.
func PresenceText(serverName string, c domain.Countdown) string {
	if c.Overdue {
		return serverName + " wipe overdue"
	}
	return serverName + " wipe in " + strconv.Itoa(c.Days) + "d " + strconv.Itoa(c.Hours) + "h"
}

func Players(players, maxPlayers int) string {
	return printer.Sprintf("%d/%d", players, maxPlayers)
}
