package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"foodshare-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.Sentinel("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.Sentinel("user inactive", errs.ErrForbidden)
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserProfileView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindProfile(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserProfileView, error) {
	profile, err := q.readStore.FindProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !profile.IsActive {
		return nil, ErrUserInactive
	}

	return profile, nil
}
