//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db query.DBTX, arg query.UpdateUserLastLoginParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()
	at := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantError bool
		errIs     error
	}{
		{
			name:     "success",
			affected: 1,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
		{
			name:      "unknown user",
			affected:  0,
			wantError: true,
			errIs:     queries.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, query.UpdateUserLastLoginParams{
				ID:        testUserID,
				LastLogin: pgtype.Timestamptz{Time: at, Valid: true},
			}).Return(tt.affected, tt.mockError)

			repo := NewUserRepository(mockQueries, nopDB{})

			err := repo.UpdateLastLogin(context.Background(), testUserID, at)

			switch {
			case tt.errIs != nil:
				assert.ErrorIs(t, err, tt.errIs)
			case tt.wantError:
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			default:
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
