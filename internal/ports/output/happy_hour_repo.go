package output

import (
	"context"

	"clubhouse/internal/domain/entities"
)

// HappyHourRepository stores the single happy hour record. Create fails with
// domain.ErrHappyHourExists when one is already stored.
type HappyHourRepository interface {
	Create(ctx context.Context, hh *entities.HappyHour) error
	Current(ctx context.Context) (*entities.HappyHour, error)
	FindByID(ctx context.Context, id string) (*entities.HappyHour, error)
	Update(ctx context.Context, hh *entities.HappyHour) error
}
