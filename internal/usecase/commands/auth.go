package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"parking-system/internal/domain/auth"
	"parking-system/internal/pkg/errs"
	"parking-system/internal/pkg/jwt"
	"parking-system/internal/pkg/password"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// OperatorAccount is the configured operator allowed to log in.
type OperatorAccount struct {
	Username     string
	PasswordHash string
}

type LoginResult struct {
	Operator    string
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	account    OperatorAccount
	jwtService *jwt.Service
}

func NewAuthCommands(account OperatorAccount, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		account:    account,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, credentials auth.Credentials) (*LoginResult, error) {
	// compare the hash even for an unknown name so both failures cost the same
	nameMatches := subtle.ConstantTimeCompare([]byte(credentials.Username()), []byte(a.account.Username)) == 1
	passErr := password.ComparePassword(a.account.PasswordHash, credentials.Password())
	if !nameMatches || passErr != nil {
		slog.Warn("operator login rejected", "username", credentials.Username())
		return nil, errs.Mark(auth.ErrInvalidCredentials, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(a.account.Username, jwt.RoleOperator)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Operator:    a.account.Username,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
