package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"clubhouse/internal/ports/output"
	pkgdiscord "clubhouse/pkg/discord"
)

// embedSender is the slice of *discordgo.Session the notifier needs.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts one embed per admitted registration to the staff channel.
type Notifier struct {
	sender     embedSender
	channelID  string
	translator output.T
	locale     string
	loc        *time.Location
	log        *zerolog.Logger
}

func NewNotifier(sender embedSender, channelID string, translator output.T, locale string, loc *time.Location, logger *zerolog.Logger) *Notifier {
	return &Notifier{
		sender:     sender,
		channelID:  channelID,
		translator: translator,
		locale:     locale,
		loc:        loc,
		log:        logger,
	}
}

// HandleAdmitted is the consumer callback. An error makes the broker redeliver the message.
func (n *Notifier) HandleAdmitted(ctx context.Context, msg output.RegistrationAdmitted) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	embed := pkgdiscord.BuildRegistrationEmbed(msg, n.translator, n.locale, n.loc)
	sent, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("post registration for event %s: %w", msg.EventID, err)
	}
	n.log.Info().
		Str("event_id", msg.EventID).
		Str("customer_id", msg.CustomerID).
		Str("message_id", sent.ID).
		Msg("registration posted to discord")
	return nil
}
