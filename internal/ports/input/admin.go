package input

import (
	"context"
	"time"

	"clubhouse/internal/domain/entities"
)

type RegisterAdmin struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *entities.Admin
}

type AdminUseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RegisterAdmin(ctx context.Context, cmd RegisterAdmin) (*entities.Admin, error)
	Authenticate(ctx context.Context, token string) (*entities.Admin, error)
}
