//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestQueries struct {
	mock.Mock
}

func (m *MockRequestQueries) CreateRequest(ctx context.Context, db query.DBTX, arg query.CreateRequestParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockRequestQueries) GetRequest(ctx context.Context, db query.DBTX, id uuid.UUID) (query.DonationRequests, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.DonationRequests), args.Error(1)
}

func (m *MockRequestQueries) GetRequestForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.DonationRequests, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.DonationRequests), args.Error(1)
}

func (m *MockRequestQueries) GetActiveRequestForPair(ctx context.Context, db query.DBTX, donationID, requesterID uuid.UUID) (query.DonationRequests, error) {
	args := m.Called(ctx, db, donationID, requesterID)
	return args.Get(0).(query.DonationRequests), args.Error(1)
}

func (m *MockRequestQueries) ListActiveRequestsByDonation(ctx context.Context, db query.DBTX, donationID uuid.UUID) ([]query.DonationRequests, error) {
	args := m.Called(ctx, db, donationID)
	return args.Get(0).([]query.DonationRequests), args.Error(1)
}

func (m *MockRequestQueries) UpdateRequestIfStatus(ctx context.Context, db query.DBTX, arg query.UpdateRequestParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestQueries) ListOverdueRequests(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) ([]query.DonationRequests, error) {
	args := m.Called(ctx, db, now)
	return args.Get(0).([]query.DonationRequests), args.Error(1)
}

func TestRequestRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		errIs   error
		errKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:  "active pair already exists",
			dbErr: &pgconn.PgError{Code: "23505"},
			errIs: domrequest.ErrAlreadyRequested,
		},
		{
			name:    "unknown donation",
			dbErr:   &pgconn.PgError{Code: "23503"},
			errKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := builder.NewRequestBuilder().BuildReconstructed()

			mockQueries := new(MockRequestQueries)
			mockQueries.On("CreateRequest", mock.Anything, mock.Anything,
				mock.MatchedBy(func(p query.CreateRequestParams) bool {
					return p.ID == r.ID() && p.Status == "requested"
				}),
			).Return(tt.dbErr)

			repo := NewRequestRepository(mockQueries, nopDB{})
			err := repo.Create(context.Background(), r)

			switch {
			case tt.errIs != nil:
				require.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.Is(err, errs.ErrDuplicateRequest))
			case tt.errKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.errKind))
			default:
				require.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestRequestRepository_FindActive(t *testing.T) {
	donationID, requesterID := uuid.New(), uuid.New()

	t.Run("no active request", func(t *testing.T) {
		mockQueries := new(MockRequestQueries)
		mockQueries.On("GetActiveRequestForPair", mock.Anything, mock.Anything, donationID, requesterID).
			Return(query.DonationRequests{}, pgx.ErrNoRows)

		repo := NewRequestRepository(mockQueries, nopDB{})
		got, err := repo.FindActive(context.Background(), donationID, requesterID)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("active request", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockRequestQueries)
		mockQueries.On("GetActiveRequestForPair", mock.Anything, mock.Anything, donationID, requesterID).
			Return(query.DonationRequests{ID: id, DonationID: donationID, RequesterID: requesterID, Status: "reserved"}, nil)

		repo := NewRequestRepository(mockQueries, nopDB{})
		got, err := repo.FindActive(context.Background(), donationID, requesterID)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, domrequest.StatusReserved, got.Status())
	})
}

func TestRequestRepository_FindByIDForUpdate_NotFound(t *testing.T) {
	id := uuid.New()
	mockQueries := new(MockRequestQueries)
	mockQueries.On("GetRequestForUpdate", mock.Anything, mock.Anything, id).
		Return(query.DonationRequests{}, pgx.ErrNoRows)

	repo := NewRequestRepository(mockQueries, nopDB{})
	_, err := repo.FindByIDForUpdate(context.Background(), id)

	require.ErrorIs(t, err, domrequest.ErrRequestNotFound)
}

func TestRequestRepository_Update_StatusChanged(t *testing.T) {
	r := builder.NewRequestBuilder().BuildReconstructed()
	mockQueries := new(MockRequestQueries)
	mockQueries.On("UpdateRequestIfStatus", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

	repo := NewRequestRepository(mockQueries, nopDB{})
	err := repo.Update(context.Background(), r, domrequest.StatusRequested)

	require.ErrorIs(t, err, domrequest.ErrRequestClosed)
}

func TestRequestRepository_ListOverdue(t *testing.T) {
	now := builder.FixedNow
	row := query.DonationRequests{
		ID:             uuid.New(),
		DonationID:     uuid.New(),
		RequesterID:    uuid.New(),
		RequiredBefore: pgtype.Timestamptz{Time: now.Add(-time.Minute), Valid: true},
		Status:         "requested",
		CreatedAt:      pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now.Add(-time.Hour), Valid: true},
	}

	t.Run("converts rows", func(t *testing.T) {
		mockQueries := new(MockRequestQueries)
		mockQueries.On("ListOverdueRequests", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: now, Valid: true}).
			Return([]query.DonationRequests{row}, nil)

		repo := NewRequestRepository(mockQueries, nopDB{})
		got, err := repo.ListOverdue(context.Background(), now)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, row.ID, got[0].ID())
		assert.Equal(t, row.RequesterID, got[0].RequesterID())
		assert.Equal(t, domrequest.StatusRequested, got[0].Status())
		mockQueries.AssertExpectations(t)
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		mockQueries := new(MockRequestQueries)
		mockQueries.On("ListOverdueRequests", mock.Anything, mock.Anything, mock.Anything).
			Return([]query.DonationRequests(nil), &pgconn.PgError{Code: "57014"})

		repo := NewRequestRepository(mockQueries, nopDB{})
		_, err := repo.ListOverdue(context.Background(), now)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
