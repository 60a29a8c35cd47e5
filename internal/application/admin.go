package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"clubhouse/internal/clock"
	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/input"
	"clubhouse/internal/ports/output"
)

const minAdminPasswordLen = 8

var _ input.AdminUseCase = (*AdminService)(nil)

type AdminService struct {
	adminRepo output.AdminRepository
	hasher    output.PasswordHasher
	tokens    output.TokenService
	clock     clock.Clock
	log       *zerolog.Logger
}

func NewAdminService(
	adminRepo output.AdminRepository,
	hasher output.PasswordHasher,
	tokens output.TokenService,
	clk clock.Clock,
	logger *zerolog.Logger,
) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokens:    tokens,
		clock:     clk,
		log:       logger,
	}
}

// Login answers the same error for an unknown email and a wrong password.
func (s *AdminService) Login(ctx context.Context, email, password string) (*input.LoginResult, error) {
	email = entities.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrCredentialsMissing
	}
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !s.hasher.Compare(admin.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	token, exp, err := s.tokens.Issue(admin, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return &input.LoginResult{Token: token, ExpiresAt: exp, Admin: admin}, nil
}

func (s *AdminService) RegisterAdmin(ctx context.Context, cmd input.RegisterAdmin) (*entities.Admin, error) {
	admin := &entities.Admin{Name: cmd.Name, Email: cmd.Email}
	admin.Normalize()
	if admin.Name == "" {
		return nil, domain.ErrNameRequired
	}
	if err := entities.ValidateEmail(admin.Email); err != nil {
		return nil, err
	}
	if len(cmd.Password) < minAdminPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}
	existing, err := s.adminRepo.FindByEmail(ctx, admin.Email)
	if err = ignoreNotFound(err); err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAdminExists
	}
	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	admin.PasswordHash = hash
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// Authenticate resolves a bearer token to an admin that still exists.
func (s *AdminService) Authenticate(ctx context.Context, token string) (*entities.Admin, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	claims, err := s.tokens.Verify(token, s.clock.Now())
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	admin, err := s.adminRepo.FindByID(ctx, claims.AdminID)
	if err != nil {
		if isNotFound(err) || domain.KindOf(err) == domain.KindValidation {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}

// Bootstrap creates the configured admin on first start. It is a no-op when either
// credential is empty or the email is already registered.
func (s *AdminService) Bootstrap(ctx context.Context, cmd input.RegisterAdmin) error {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return nil
	}
	if strings.TrimSpace(cmd.Name) == "" {
		cmd.Name = "Admin"
	}
	admin, err := s.RegisterAdmin(ctx, cmd)
	switch {
	case err == nil:
		s.log.Info().Str("admin_id", admin.ID).Str("email", admin.Email).Msg("bootstrap admin created")
		return nil
	case domain.KindOf(err) == domain.KindConflict:
		s.log.Debug().Str("email", entities.NormalizeEmail(cmd.Email)).Msg("bootstrap admin already present")
		return nil
	default:
		return fmt.Errorf("bootstrap admin: %w", err)
	}
}
