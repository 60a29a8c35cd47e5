package application

import (
	"github.com/google/uuid"

	"clubhouse/internal/domain"
)

func checkID(id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrInvalidID
	}
	return nil
}

func isNotFound(err error) bool {
	return domain.KindOf(err) == domain.KindNotFound
}

// ignoreNotFound drops not-found errors. Repositories return a nil record alongside them.
func ignoreNotFound(err error) error {
	if isNotFound(err) {
		return nil
	}
	return err
}
