package readstore

import (
	"context"

	"foodshare-api/internal/infra"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/infra/repository/converter"
	"foodshare-api/internal/pkg/pgconv"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestReadQueries interface {
	ListRequestsByRequester(ctx context.Context, db query.DBTX, arg query.ListRequestsByRequesterParams) ([]query.ListRequestsByRequesterRow, error)
	CountRequestsByRequester(ctx context.Context, db query.DBTX, arg query.ListRequestsByRequesterParams) (int64, error)
}

type RequestReadStore struct {
	queries RequestReadQueries
	db      query.DBTX
}

func NewRequestReadStore(queries RequestReadQueries, db query.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID, statuses []string, offset, limit int) ([]*queries.ActivityItem, int, error) {
	params := query.ListRequestsByRequesterParams{
		RequesterID: requesterID,
		Statuses:    statuses,
		Offset:      int32(offset), // #nosec G115 -- bounded by pagination limits
		Limit:       int32(limit),  // #nosec G115 -- bounded by pagination limits
	}

	total, err := s.queries.CountRequestsByRequester(ctx, s.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count requests", err)
	}
	rows, err := s.queries.ListRequestsByRequester(ctx, s.db, params)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list requests", err)
	}

	items := make([]*queries.ActivityItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.ActivityItem{
			RequestID:      row.Request.ID,
			Status:         row.Request.Status,
			RequiredBefore: pgconv.TimeFromPgtype(row.Request.RequiredBefore),
			ApprovedAt:     pgconv.TimePtrFromPgtype(row.Request.ApprovedAt),
			CompletedAt:    pgconv.TimePtrFromPgtype(row.Request.CompletedAt),
			CreatedAt:      pgconv.TimeFromPgtype(row.Request.CreatedAt),
			Donation:       *converter.DonationToView(row.Donation),
			DonorContact: &queries.ContactView{
				Name:  row.DonorName,
				Email: row.DonorEmail,
				Phone: row.DonorPhone,
				City:  row.DonorCity,
			},
		}
	}
	return items, int(total), nil
}
