package output

import (
	"context"

	"clubhouse/internal/domain/entities"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	FindByID(ctx context.Context, id string) (*entities.Admin, error)
	FindByEmail(ctx context.Context, email string) (*entities.Admin, error)
}
