package queries

//go:generate mockgen -source=donation.go -destination=../../../tests/mock/queries/donation.go -package=queriesmock

import (
	"context"
	"strings"

	"foodshare-api/internal/domain/donation"

	"github.com/google/uuid"
)

type DonationListFilter struct {
	Statuses []string
	Search   string
	Offset   int
	Limit    int
}

type DonationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DonationView, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID, filter DonationListFilter) ([]*DonationView, int, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]*DonationCandidate, error)
	ListRequestsForDonation(ctx context.Context, donationID uuid.UUID) ([]*DonationRequestView, error)
}

type ListDonationsFilter struct {
	Tab    string
	Search string
	Pagination
}

type DonationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DonationView, error)
	ListMine(ctx context.Context, donorID uuid.UUID, filter ListDonationsFilter) (*Page[*DonationView], error)
	ListRequestsForDonation(ctx context.Context, donationID, donorID uuid.UUID) ([]*DonationRequestView, error)
}

type donationQueriesImpl struct {
	readStore DonationReadStore
}

func NewDonationQueries(readStore DonationReadStore) DonationQueries {
	return &donationQueriesImpl{readStore: readStore}
}

func (q *donationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DonationView, error) {
	return q.readStore.FindByID(ctx, id)
}

func (q *donationQueriesImpl) ListMine(ctx context.Context, donorID uuid.UUID, filter ListDonationsFilter) (*Page[*DonationView], error) {
	tab, err := donation.ParseTab(filter.Tab)
	if err != nil {
		return nil, err
	}
	p := filter.Pagination.Normalize()

	items, total, err := q.readStore.ListByDonor(ctx, donorID, DonationListFilter{
		Statuses: statusStrings(tab.Statuses()),
		Search:   strings.TrimSpace(filter.Search),
		Offset:   p.Offset(),
		Limit:    p.Limit,
	})
	if err != nil {
		return nil, err
	}
	return NewPage(items, total, p), nil
}

func (q *donationQueriesImpl) ListRequestsForDonation(ctx context.Context, donationID, donorID uuid.UUID) ([]*DonationRequestView, error) {
	d, err := q.readStore.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if d.DonorID != donorID {
		return nil, donation.ErrNotDonationOwner
	}
	return q.readStore.ListRequestsForDonation(ctx, donationID)
}

func statusStrings[S ~string](statuses []S) []string {
	if statuses == nil {
		return nil
	}
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
