//go:build unit || e2e

package builder

import (
	reqdto "parking-system/internal/handler/dto/request"
	"parking-system/internal/pkg/config"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "operator",
		Password: config.TestOperatorPassword,
	}
}

func (a *AuthBuilder) WithPassword(p string) *AuthBuilder {
	a.Password = p
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
