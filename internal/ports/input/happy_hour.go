package input

import (
	"context"

	"clubhouse/internal/domain/entities"
)

type HappyHourFields struct {
	StartTime string
	EndTime   string
	Image     string
}

// HappyHourStatus is the public view. When Exists is false every other field is empty.
type HappyHourStatus struct {
	Exists    bool
	IsLive    bool
	HappyHour *entities.HappyHour
}

type HappyHourUseCase interface {
	CreateHappyHour(ctx context.Context, fields HappyHourFields) (*entities.HappyHour, error)
	UpdateHappyHour(ctx context.Context, id string, fields HappyHourFields) (*entities.HappyHour, error)
	GetHappyHour(ctx context.Context) (*entities.HappyHour, error)
	Status(ctx context.Context) (*HappyHourStatus, error)
}
