package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"clubhouse/internal/ports/output"
)

const (
	embedColor     = 0x5865F2
	embedColorFull = 0xED4245
)

// FormatSeats renders "taken/capacity", suffixed with the full marker once no seat is left.
func FormatSeats(taken, capacity int, fullMarker string) string {
	seats := fmt.Sprintf("%d/%d", taken, capacity)
	if capacity > 0 && taken >= capacity {
		seats += " • " + fullMarker
	}
	return seats
}

// BuildRegistrationEmbed builds the staff-channel post for one admitted registration.
func BuildRegistrationEmbed(msg output.RegistrationAdmitted, t output.T, locale string, loc *time.Location) *discordgo.MessageEmbed {
	full := msg.Capacity > 0 && msg.AttendeeCount >= msg.Capacity
	color := embedColor
	if full {
		color = embedColorFull
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: t.T(locale, "discord.registration.guest", nil), Value: guestName(msg.CustomerName), Inline: true},
		{
			Name:   t.T(locale, "discord.registration.seats", nil),
			Value:  FormatSeats(msg.AttendeeCount, msg.Capacity, t.T(locale, "discord.registration.full", nil)),
			Inline: true,
		},
	}
	if starts := FormatDateTime(msg.EventStart, loc); starts != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  t.T(locale, "discord.registration.starts", nil),
			Value: starts,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:  t.T(locale, "discord.registration.title", map[string]any{"Event": msg.EventName}),
		Color:  color,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: msg.EventID},
	}
	if !msg.AdmittedAt.IsZero() {
		embed.Timestamp = msg.AdmittedAt.UTC().Format(time.RFC3339)
	}
	return embed
}

func guestName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "-"
	}
	return name
}
