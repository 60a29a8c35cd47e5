package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"clubhouse/internal/ports/output"
)

// Bot owns the Discord gateway session used to post staff notifications.
type Bot struct {
	session  *discordgo.Session
	notifier *Notifier
	log      *zerolog.Logger
}

// NewBot creates the session and a Notifier posting to channelID. Call Open before notifying.
func NewBot(token, channelID string, translator output.T, locale string, loc *time.Location, logger *zerolog.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session:  s,
		notifier: NewNotifier(s, channelID, translator, locale, loc, logger),
		log:      logger,
	}
	s.AddHandler(b.onReady)
	return b, nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("discord bot online")
}

func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	return nil
}

func (b *Bot) Close() {
	if err := b.session.Close(); err != nil {
		b.log.Warn().Err(err).Msg("discord close")
	}
}

func (b *Bot) Notifier() *Notifier {
	return b.notifier
}
