package usecase

import (
	"booth-booking/internal/domain/staff"
	"booth-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides staff token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.StaffID, role, nil
}
