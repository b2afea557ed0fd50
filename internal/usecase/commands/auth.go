package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"foodshare-api/internal/domain/auth"
	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/pkg/password"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Sentinel("invalid credentials", errs.ErrValidation)
	ErrUserInactive       = errs.Sentinel("user inactive", errs.ErrForbidden)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, email, pw string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
	clock     clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		clock:     clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.tokens.GenerateToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, account.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded; only the audit timestamp is lost
		slog.Warn("failed to update last login", "user_id", account.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID,
		Role:        role,
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	account, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// same error as a wrong password to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	return account, nil
}
