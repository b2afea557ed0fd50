package repository

import (
	"context"
	"time"

	"foodshare-api/internal/domain/donation"
	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/infra/repository/converter"
	"foodshare-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DonationQueries interface {
	CreateDonation(ctx context.Context, db query.DBTX, arg query.CreateDonationParams) error
	GetDonation(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Donations, error)
	GetDonationForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Donations, error)
	UpdateDonationIfStatus(ctx context.Context, db query.DBTX, arg query.UpdateDonationParams) (int64, error)
	DeleteDonation(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	ExpireAvailableDonations(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) (int64, error)
}

type DonationRepository struct {
	queries DonationQueries
	db      query.DBTX
}

func NewDonationRepository(queries DonationQueries, db query.DBTX) *DonationRepository {
	return &DonationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DonationRepository) Create(ctx context.Context, d *donation.Donation) error {
	if err := r.queries.CreateDonation(ctx, r.db, converter.DonationToCreateParams(d)); err != nil {
		return infra.WrapRepoErr("failed to create donation", err)
	}
	return nil
}

func (r *DonationRepository) FindByID(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	row, err := r.queries.GetDonation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, donation.ErrDonationNotFound
		}
		return nil, infra.WrapRepoErr("failed to find donation", err)
	}
	return converter.DonationToDomain(row), nil
}

func (r *DonationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	row, err := r.queries.GetDonationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, donation.ErrDonationNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock donation", err)
	}
	return converter.DonationToDomain(row), nil
}

func (r *DonationRepository) Update(ctx context.Context, d *donation.Donation, expected donation.Status) error {
	n, err := r.queries.UpdateDonationIfStatus(ctx, r.db, converter.DonationToUpdateParams(d, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update donation", err)
	}
	if n == 0 {
		return donation.ErrConcurrentUpdate
	}
	return nil
}

func (r *DonationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteDonation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete donation", err)
	}
	if n == 0 {
		return donation.ErrDonationNotFound
	}
	return nil
}

func (r *DonationRepository) ExpireAvailable(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.queries.ExpireAvailableDonations(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire donations", err)
	}
	return n, nil
}
