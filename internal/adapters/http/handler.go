package http

import (
	"github.com/rs/zerolog"

	"clubhouse/internal/clock"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/ports/output"
)

// Handler serves the public and admin HTTP API.
type Handler struct {
	events        input.EventUseCase
	registrations input.RegistrationUseCase
	customers     input.CustomerUseCase
	admins        input.AdminUseCase
	happyHours    input.HappyHourUseCase
	translator    output.T
	clock         clock.Clock
	log           *zerolog.Logger
}

func NewHandler(
	events input.EventUseCase,
	registrations input.RegistrationUseCase,
	customers input.CustomerUseCase,
	admins input.AdminUseCase,
	happyHours input.HappyHourUseCase,
	translator output.T,
	clk clock.Clock,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		events:        events,
		registrations: registrations,
		customers:     customers,
		admins:        admins,
		happyHours:    happyHours,
		translator:    translator,
		clock:         clk,
		log:           logger,
	}
}
