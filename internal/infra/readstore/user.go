package readstore

import (
	"context"

	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/infra/repository/converter"
	"foodshare-api/internal/pkg/pgconv"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error)
	GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.Users, error)
}

// UserReadStore also serves as the shared.UserDirectory for the postgres driver.
type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserToAuthorizedView(row), nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := s.queries.GetUserByEmail(ctx, s.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", queries.ErrUserNotFound
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return converter.UserToAuthorizedView(row), row.PasswordHash, nil
}

func (s *UserReadStore) FindProfile(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserToProfileView(row), nil
}

func (s *UserReadStore) ContactByID(ctx context.Context, id uuid.UUID) (*shared.Contact, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.UserToContact(row), nil
}

func (s *UserReadStore) findByID(ctx context.Context, id uuid.UUID) (query.Users, error) {
	row, err := s.queries.GetUserByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return query.Users{}, queries.ErrUserNotFound
		}
		return query.Users{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}
