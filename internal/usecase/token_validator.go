package usecase

import (
	"hall-booking/internal/domain/user"
	"hall-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a bearer token into an opaque requester identity. The
// engine never holds session state; tokens are minted by the external
// identity collaborator with the shared secret.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
