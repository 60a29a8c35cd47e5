package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"clubhouse/internal/adapters/discord"
	"clubhouse/internal/config"
	"clubhouse/internal/infrastructure/i18n"
	"clubhouse/internal/infrastructure/messaging"
	"clubhouse/pkg/tz"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := cfg.NewLogger("bot")

	if err := run(cfg, &logger); err != nil {
		logger.Fatal().Err(err).Msg("bot stopped")
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateBot(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, logger *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := tz.Load(cfg.ClubTimezone)
	if err != nil {
		return err
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	bot, err := discord.NewBot(cfg.DiscordToken, cfg.DiscordChannelID, translator, cfg.DefaultLocale, loc, logger)
	if err != nil {
		return err
	}
	if err := bot.Open(); err != nil {
		return err
	}
	defer bot.Close()

	client, err := messaging.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Consume(ctx, bot.Notifier().HandleAdmitted)
}
