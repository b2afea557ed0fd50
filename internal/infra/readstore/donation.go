package readstore

import (
	"context"

	"foodshare-api/internal/domain/donation"
	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/infra/repository/converter"
	"foodshare-api/internal/pkg/pgconv"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DonationReadQueries interface {
	GetDonation(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Donations, error)
	ListDonationsByDonor(ctx context.Context, db query.DBTX, arg query.ListDonationsByDonorParams) ([]query.Donations, error)
	CountDonationsByDonor(ctx context.Context, db query.DBTX, arg query.ListDonationsByDonorParams) (int64, error)
	ListCandidateDonations(ctx context.Context, db query.DBTX, arg query.ListCandidateDonationsParams) ([]query.ListCandidateDonationsRow, error)
	ListRequestsForDonation(ctx context.Context, db query.DBTX, donationID uuid.UUID) ([]query.ListRequestsForDonationRow, error)
}

type DonationReadStore struct {
	queries DonationReadQueries
	db      query.DBTX
}

func NewDonationReadStore(queries DonationReadQueries, db query.DBTX) *DonationReadStore {
	return &DonationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *DonationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DonationView, error) {
	row, err := s.queries.GetDonation(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, donation.ErrDonationNotFound
		}
		return nil, infra.WrapRepoErr("failed to find donation", err)
	}
	return converter.DonationToView(row), nil
}

func (s *DonationReadStore) ListByDonor(ctx context.Context, donorID uuid.UUID, filter queries.DonationListFilter) ([]*queries.DonationView, int, error) {
	params := query.ListDonationsByDonorParams{
		DonorID:  donorID,
		Statuses: filter.Statuses,
		Offset:   int32(filter.Offset), // #nosec G115 -- bounded by pagination limits
		Limit:    int32(filter.Limit),  // #nosec G115 -- bounded by pagination limits
	}
	if filter.Search != "" {
		params.Search = pgtype.Text{String: query.EscapeLike(filter.Search), Valid: true}
	}

	total, err := s.queries.CountDonationsByDonor(ctx, s.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count donations", err)
	}
	rows, err := s.queries.ListDonationsByDonor(ctx, s.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list donations", err)
	}

	views := make([]*queries.DonationView, len(rows))
	for i, row := range rows {
		views[i] = converter.DonationToView(row)
	}
	return views, int(total), nil
}

func (s *DonationReadStore) ListCandidates(ctx context.Context, filter queries.CandidateFilter) ([]*queries.DonationCandidate, error) {
	params := query.ListCandidateDonationsParams{
		Statuses:         filter.Statuses,
		ExpiresAfter:     pgconv.TimeToPgtype(filter.ExpiresAfter),
		ExpiresNotBefore: pgconv.TimePtrToPgtype(filter.ExpiresNotBefore),
		MealType:         pgconv.StringPtrToPgtype(filter.MealType),
	}
	rows, err := s.queries.ListCandidateDonations(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate donations", err)
	}

	out := make([]*queries.DonationCandidate, len(rows))
	for i, row := range rows {
		out[i] = &queries.DonationCandidate{
			Donation:  *converter.DonationToView(row.Donations),
			DonorName: row.DonorName,
			DonorCity: row.DonorCity,
			DonorLocation: geo.PointFrom(
				pgconv.Float64PtrFromPgtype(row.DonorLatitude),
				pgconv.Float64PtrFromPgtype(row.DonorLongitude),
			),
		}
	}
	return out, nil
}

func (s *DonationReadStore) ListRequestsForDonation(ctx context.Context, donationID uuid.UUID) ([]*queries.DonationRequestView, error) {
	rows, err := s.queries.ListRequestsForDonation(ctx, s.db, donationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests for donation", err)
	}

	out := make([]*queries.DonationRequestView, len(rows))
	for i, row := range rows {
		out[i] = &queries.DonationRequestView{
			RequestID:        row.RequestID,
			OrganizationID:   row.RequesterID,
			OrganizationName: row.RequesterName,
			City:             row.RequesterCity,
			Status:           row.Status,
			RequiredBefore:   pgconv.TimeFromPgtype(row.RequiredBefore),
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return out, nil
}
