package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clubhouse/internal/domain"
	"clubhouse/internal/domain/entities"
	"clubhouse/internal/ports/output"
)

const adminRole = "admin"

var _ output.TokenService = (*JWTService)(nil)

// JWTService signs admin tokens with HS256.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTService) Issue(admin *entities.Admin, now time.Time) (string, time.Time, error) {
	exp := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"role":  adminRole,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

func (s *JWTService) Verify(token string, now time.Time) (*output.TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	if role, _ := claims["role"].(string); role != adminRole {
		return nil, domain.ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	return &output.TokenClaims{AdminID: sub, Email: email, ExpiresAt: exp.Time}, nil
}
