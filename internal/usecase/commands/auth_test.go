//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parking-system/internal/domain/auth"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/pkg/jwt"
	"parking-system/internal/pkg/password"
	"parking-system/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("operator-pass")
	require.NoError(t, err)

	jwtService := jwt.NewService("test-secret", time.Hour)
	cmds := commands.NewAuthCommands(commands.OperatorAccount{
		Username:     "operator",
		PasswordHash: hash,
	}, jwtService)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid operator", username: "operator", password: "operator-pass"},
		{name: "wrong password", username: "operator", password: "nope", wantErr: true},
		{name: "unknown operator", username: "someone", password: "operator-pass", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := auth.NewCredentials(tt.username, tt.password)
			require.NoError(t, err)

			result, err := cmds.Login(context.Background(), creds)

			if tt.wantErr {
				assert.Nil(t, result)
				assert.True(t, errs.Is(err, errs.ErrInvalidCredentials))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "operator", result.Operator)
			assert.Equal(t, time.Hour, result.ExpiresIn)

			claims, err := jwtService.ValidateToken(result.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "operator", claims.Subject)
			assert.Equal(t, jwt.RoleOperator, claims.Role)
		})
	}
}
