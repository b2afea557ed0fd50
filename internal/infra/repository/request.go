package repository

import (
	"context"
	"time"

	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/infra/repository/converter"
	"foodshare-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestQueries interface {
	CreateRequest(ctx context.Context, db query.DBTX, arg query.CreateRequestParams) error
	GetRequest(ctx context.Context, db query.DBTX, id uuid.UUID) (query.DonationRequests, error)
	GetRequestForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.DonationRequests, error)
	GetActiveRequestForPair(ctx context.Context, db query.DBTX, donationID, requesterID uuid.UUID) (query.DonationRequests, error)
	ListActiveRequestsByDonation(ctx context.Context, db query.DBTX, donationID uuid.UUID) ([]query.DonationRequests, error)
	UpdateRequestIfStatus(ctx context.Context, db query.DBTX, arg query.UpdateRequestParams) (int64, error)
	ListOverdueRequests(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) ([]query.DonationRequests, error)
}

type RequestRepository struct {
	queries RequestQueries
	db      query.DBTX
}

func NewRequestRepository(queries RequestQueries, db query.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domrequest.Request) error {
	err := r.queries.CreateRequest(ctx, r.db, converter.RequestToCreateParams(req))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create request", err)
		// the partial unique index guards the active (donation, requester) pair
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return domrequest.ErrAlreadyRequested
		}
		return wrapped
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domrequest.Request, error) {
	row, err := r.queries.GetRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, domrequest.ErrRequestNotFound
		}
		return nil, infra.WrapRepoErr("failed to find request", err)
	}
	return converter.RequestToDomain(row), nil
}

func (r *RequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domrequest.Request, error) {
	row, err := r.queries.GetRequestForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, domrequest.ErrRequestNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock request", err)
	}
	return converter.RequestToDomain(row), nil
}

func (r *RequestRepository) FindActive(ctx context.Context, donationID, requesterID uuid.UUID) (*domrequest.Request, error) {
	row, err := r.queries.GetActiveRequestForPair(ctx, r.db, donationID, requesterID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active request", err)
	}
	return converter.RequestToDomain(row), nil
}

func (r *RequestRepository) ListActiveByDonation(ctx context.Context, donationID uuid.UUID) ([]*domrequest.Request, error) {
	rows, err := r.queries.ListActiveRequestsByDonation(ctx, r.db, donationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active requests", err)
	}
	out := make([]*domrequest.Request, len(rows))
	for i, row := range rows {
		out[i] = converter.RequestToDomain(row)
	}
	return out, nil
}

func (r *RequestRepository) Update(ctx context.Context, req *domrequest.Request, expected domrequest.Status) error {
	n, err := r.queries.UpdateRequestIfStatus(ctx, r.db, converter.RequestToUpdateParams(req, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update request", err)
	}
	if n == 0 {
		return domrequest.ErrRequestClosed
	}
	return nil
}

func (r *RequestRepository) ListOverdue(ctx context.Context, now time.Time) ([]*domrequest.Request, error) {
	rows, err := r.queries.ListOverdueRequests(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue requests", err)
	}
	out := make([]*domrequest.Request, len(rows))
	for i, row := range rows {
		out[i] = converter.RequestToDomain(row)
	}
	return out, nil
}
