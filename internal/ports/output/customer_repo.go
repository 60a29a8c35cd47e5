package output

import (
	"context"

	"clubhouse/internal/domain/entities"
)

// CustomerRepository persists customers. Lookups of absent records return domain.ErrCustomerNotFound;
// phone or email collisions return domain.ErrPhoneTaken or domain.ErrEmailTaken.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	FindByID(ctx context.Context, id string) (*entities.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*entities.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entities.Customer, error)
	FindByIDs(ctx context.Context, ids []string) ([]entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, customer *entities.Customer) error
	Delete(ctx context.Context, id string) error
}
