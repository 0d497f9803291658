package commands

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

func embeds(reply Reply) []*discordgo.MessageEmbed {
	if reply.Embed == nil {
		return nil
	}
	return []*discordgo.MessageEmbed{reply.Embed}
}

func deferResponse(s DiscordSession, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func editResponse(s DiscordSession, i *discordgo.InteractionCreate, reply Reply) error {
	content := reply.Content
	list := embeds(reply)
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &list,
	})
	return err
}

func sendMessage(s DiscordSession, m *discordgo.MessageCreate, reply Reply) error {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   reply.Content,
		Embeds:    embeds(reply),
		Reference: m.Reference(),
	})
	return err
}

func getStringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// parsePrefixed splits "<prefix><name> args..." into a lowercase command name
// and its arguments. ok is false when content does not start with prefix.
func parsePrefixed(content, prefix string) (name string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}
