package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"clubhouse/internal/domain"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	validate     = validator.New()
)

// Customer is a person known to the club, identified by phone or email.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize trims every field and lowercases the email.
func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = NormalizePhone(c.Phone)
	c.Email = NormalizeEmail(c.Email)
}

// Validate checks the stored shape of a customer. Call Normalize first.
func (c *Customer) Validate() error {
	if c.Name == "" {
		return domain.ErrNameRequired
	}
	if err := ValidatePhone(c.Phone); err != nil {
		return err
	}
	return ValidateEmail(c.Email)
}

func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return domain.ErrPhoneInvalid
	}
	return nil
}

func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return domain.ErrEmailInvalid
	}
	return nil
}

// IsPhone reports whether phone has the 10-digit shape. Used by request validators.
func IsPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
