package queries

//go:generate mockgen -source=request.go -destination=../../../tests/mock/queries/request.go -package=queriesmock

import (
	"context"

	domrequest "foodshare-api/internal/domain/request"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	ListByRequester(ctx context.Context, requesterID uuid.UUID, statuses []string, offset, limit int) ([]*ActivityItem, int, error)
}

type ActivityFilter struct {
	Tab string
	Pagination
}

type RequestQueries interface {
	MyActivity(ctx context.Context, requesterID uuid.UUID, filter ActivityFilter) (*Page[*ActivityItem], error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) MyActivity(ctx context.Context, requesterID uuid.UUID, filter ActivityFilter) (*Page[*ActivityItem], error) {
	tab, err := domrequest.ParseTab(filter.Tab)
	if err != nil {
		return nil, err
	}
	p := filter.Pagination.Normalize()

	items, total, err := q.readStore.ListByRequester(ctx, requesterID, statusStrings(tab.Statuses()), p.Offset(), p.Limit)
	if err != nil {
		return nil, err
	}

	// donor contact is disclosed only once the donor approved
	for _, it := range items {
		if !domrequest.Status(it.Status).ContactVisible() {
			it.DonorContact = nil
		}
	}
	return NewPage(items, total, p), nil
}
