package queries

//go:generate mockgen -source=match.go -destination=../../../tests/mock/queries/match.go -package=queriesmock

import (
	"context"
	"slices"
	"time"

	"foodshare-api/internal/domain/donation"
	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/domain/matching"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultRadiusKm = 10.0

var (
	ErrLocationRequired = errs.Sentinel("location is required for matching", errs.ErrValidation)
	ErrInvalidRadius    = errs.Sentinel("radius must not be negative", errs.ErrValidation)
)

// CandidateFilter is evaluated by the read store; distance and score are not.
type CandidateFilter struct {
	Statuses         []string
	ExpiresAfter     time.Time
	ExpiresNotBefore *time.Time
	MealType         *string
}

type SearchParams struct {
	Location       *geo.Point
	RequestedItems []matching.Item
	RadiusKm       float64
	MealType       string
	RequiredBefore *time.Time
	Pagination
}

type MatchResult struct {
	Donation   DonationView
	DonorName  string
	DonorCity  string
	DistanceKm float64
	// nil when no items were requested
	Score *float64
}

type SearchResult struct {
	Total   int
	Page    int
	Limit   int
	Results []MatchResult
}

type MatchQueries interface {
	Search(ctx context.Context, requesterID uuid.UUID, params SearchParams) (*SearchResult, error)
}

type matchQueriesImpl struct {
	readStore       DonationReadStore
	directory       shared.UserDirectory
	clock           clock.Clock
	defaultRadiusKm float64
}

func NewMatchQueries(readStore DonationReadStore, directory shared.UserDirectory, clk clock.Clock, defaultRadiusKm float64) MatchQueries {
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = DefaultRadiusKm
	}
	return &matchQueriesImpl{
		readStore:       readStore,
		directory:       directory,
		clock:           clk,
		defaultRadiusKm: defaultRadiusKm,
	}
}

func (q *matchQueriesImpl) Search(ctx context.Context, requesterID uuid.UUID, params SearchParams) (*SearchResult, error) {
	origin, err := q.resolveLocation(ctx, requesterID, params.Location)
	if err != nil {
		return nil, err
	}

	radius := params.RadiusKm
	if radius < 0 {
		return nil, ErrInvalidRadius
	}
	if radius == 0 {
		radius = q.defaultRadiusKm
	}

	now := q.clock.Now()
	filter := CandidateFilter{
		Statuses:         statusStrings([]donation.Status{donation.StatusAvailable, donation.StatusRequested, donation.StatusReserved}),
		ExpiresAfter:     now,
		ExpiresNotBefore: params.RequiredBefore,
	}
	if params.MealType != "" {
		m, err := donation.ParseMealType(params.MealType)
		if err != nil {
			return nil, err
		}
		mt := m.String()
		filter.MealType = &mt
	}

	candidates, err := q.readStore.ListCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}

	ranked := rank(candidates, origin, radius, params.RequestedItems, now)

	p := params.Pagination.Normalize()
	return &SearchResult{
		Total:   len(ranked),
		Page:    p.Page,
		Limit:   p.Limit,
		Results: Slice(ranked, p),
	}, nil
}

func (q *matchQueriesImpl) resolveLocation(ctx context.Context, requesterID uuid.UUID, explicit *geo.Point) (geo.Point, error) {
	if explicit != nil {
		return geo.NewPoint(explicit.Lat, explicit.Lon)
	}
	contact, err := q.directory.ContactByID(ctx, requesterID)
	if err != nil {
		return geo.Point{}, err
	}
	if contact.Location == nil {
		return geo.Point{}, ErrLocationRequired
	}
	return *contact.Location, nil
}

// rank keeps candidates in load order unless items were requested, in which
// case unscored matches are dropped and the rest sorted by score.
func rank(candidates []*DonationCandidate, origin geo.Point, radiusKm float64, requested []matching.Item, now time.Time) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		if c.DonorLocation == nil {
			continue
		}
		dist := geo.DistanceKm(origin, *c.DonorLocation)
		if dist > radiusKm {
			continue
		}

		r := MatchResult{
			Donation:   c.Donation,
			DonorName:  c.DonorName,
			DonorCity:  c.DonorCity,
			DistanceKm: dist,
		}
		if len(requested) > 0 {
			score := matching.Score(viewItems(c.Donation.Items), requested, c.Donation.ExpiryTime, now)
			if score <= 0 {
				continue
			}
			r.Score = &score
		}
		results = append(results, r)
	}

	if len(requested) > 0 {
		slices.SortStableFunc(results, func(a, b MatchResult) int {
			switch {
			case *a.Score > *b.Score:
				return -1
			case *a.Score < *b.Score:
				return 1
			default:
				return 0
			}
		})
	}
	return results
}

func viewItems(items []ItemView) []matching.Item {
	out := make([]matching.Item, len(items))
	for i, it := range items {
		out[i] = matching.Item{Name: it.Name, Quantity: it.Quantity}
	}
	return out
}
