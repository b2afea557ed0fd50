package repository

import (
	"context"
	"time"

	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/pkg/pgconv"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserQueries interface {
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, arg query.UpdateUserLastLoginParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
	db      query.DBTX
}

func NewUserRepository(queries UserQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	n, err := r.queries.UpdateUserLastLogin(ctx, r.db, query.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if n == 0 {
		return queries.ErrUserNotFound
	}
	return nil
}
