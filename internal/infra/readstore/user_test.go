//go:build unit

package readstore

import (
	"context"
	"testing"

	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(query.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Users), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn query.Users
		mockError  error
		wantUser   bool
		wantHash   string
		wantError  bool
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantUser:   true,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantUser:   true,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: query.Users{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: query.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			user, hash, err := store.FindByEmail(context.Background(), tt.email)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, user)
				if tt.mockError == pgx.ErrNoRows {
					assert.ErrorIs(t, err, queries.ErrUserNotFound)
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, user.ID)
				assert.Equal(t, tt.mockReturn.IsActive, user.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestContactByID(t *testing.T) {
	withLocation := builder.NewUserBuilder().WithRole("organization").WithLocation(12.9716, 77.5946).BuildInfra()
	noLocation := builder.NewUserBuilder().BuildInfra()

	t.Run("with location", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, withLocation.ID).Return(withLocation, nil)

		contact, err := NewUserReadStore(mockQueries, nil).ContactByID(context.Background(), withLocation.ID)

		require.NoError(t, err)
		require.NotNil(t, contact.Location)
		assert.InDelta(t, 12.9716, contact.Location.Lat, 1e-9)
		assert.Equal(t, "organization", contact.Role.String())
	})

	t.Run("without location", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, noLocation.ID).Return(noLocation, nil)

		contact, err := NewUserReadStore(mockQueries, nil).ContactByID(context.Background(), noLocation.ID)

		require.NoError(t, err)
		assert.Nil(t, contact.Location)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, id).Return(query.Users{}, pgx.ErrNoRows)

		_, err := NewUserReadStore(mockQueries, nil).ContactByID(context.Background(), id)

		assert.ErrorIs(t, err, queries.ErrUserNotFound)
	})
}
