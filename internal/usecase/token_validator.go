package usecase

import (
	"parking-system/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken returns the operator name carried by the token
	ValidateToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Role != jwt.RoleOperator {
		return "", jwt.ErrInvalidToken
	}
	return claims.Subject, nil
}
