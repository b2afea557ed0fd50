package response

import (
	"time"

	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchResultResponse struct {
	Donation   *DonationResponse `json:"donation"`
	DonorName  string            `json:"donorName"`
	DonorCity  string            `json:"donorCity,omitempty"`
	DistanceKm float64           `json:"distanceKm"`
	Score      *float64          `json:"score,omitempty"`
}

type SearchResponse struct {
	Total   int                    `json:"total"`
	Page    int                    `json:"page"`
	Limit   int                    `json:"limit"`
	Results []*MatchResultResponse `json:"results"`
}

func FromSearchResult(r *queries.SearchResult) *SearchResponse {
	out := make([]*MatchResultResponse, len(r.Results))
	for i := range r.Results {
		m := r.Results[i]
		out[i] = &MatchResultResponse{
			Donation:   FromDonationView(&m.Donation),
			DonorName:  m.DonorName,
			DonorCity:  m.DonorCity,
			DistanceKm: m.DistanceKm,
			Score:      m.Score,
		}
	}
	return &SearchResponse{
		Total:   r.Total,
		Page:    r.Page,
		Limit:   r.Limit,
		Results: out,
	}
}

type RequestDonationResponse struct {
	RequestID      uuid.UUID `json:"requestId"`
	DonationStatus string    `json:"donationStatus"`
}

func FromRequestDonationResult(r *commands.RequestDonationResult) *RequestDonationResponse {
	return &RequestDonationResponse{RequestID: r.RequestID, DonationStatus: r.DonationStatus.String()}
}

type ApproveDonationResponse struct {
	RequestID      uuid.UUID `json:"requestId"`
	DonationStatus string    `json:"donationStatus"`
}

func FromApproveDonationResult(r *commands.ApproveDonationResult) *ApproveDonationResponse {
	return &ApproveDonationResponse{RequestID: r.RequestID, DonationStatus: r.DonationStatus.String()}
}

type CompleteMatchResponse struct {
	DonationID         uuid.UUID   `json:"donationId"`
	RejectedRequestIDs []uuid.UUID `json:"rejectedRequestIds"`
}

func FromCompleteMatchResult(r *commands.CompleteMatchResult) *CompleteMatchResponse {
	rejected := r.RejectedRequestIDs
	if rejected == nil {
		rejected = []uuid.UUID{}
	}
	return &CompleteMatchResponse{DonationID: r.DonationID, RejectedRequestIDs: rejected}
}

type CancelRequestResponse struct {
	DonationID     uuid.UUID `json:"donationId"`
	DonationStatus string    `json:"donationStatus"`
}

func FromCancelRequestResult(r *commands.CancelRequestResult) *CancelRequestResponse {
	return &CancelRequestResponse{DonationID: r.DonationID, DonationStatus: r.DonationStatus.String()}
}

type ContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`
}

type ActivityItemResponse struct {
	RequestID      uuid.UUID         `json:"requestId"`
	Status         string            `json:"status"`
	RequiredBefore time.Time         `json:"requiredBefore"`
	ApprovedAt     *time.Time        `json:"approvedAt,omitempty"`
	CompletedAt    *time.Time        `json:"completedAt,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	Donation       *DonationResponse `json:"donation"`
	DonorContact   *ContactResponse  `json:"donorContact,omitempty"`
}

type ActivityResponse struct {
	Requests   []*ActivityItemResponse `json:"requests"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"totalPages"`
}

func FromActivityPage(p *queries.Page[*queries.ActivityItem]) *ActivityResponse {
	out := make([]*ActivityItemResponse, len(p.Results))
	for i, it := range p.Results {
		item := &ActivityItemResponse{
			RequestID:      it.RequestID,
			Status:         it.Status,
			RequiredBefore: it.RequiredBefore,
			ApprovedAt:     it.ApprovedAt,
			CompletedAt:    it.CompletedAt,
			CreatedAt:      it.CreatedAt,
			Donation:       FromDonationView(&it.Donation),
		}
		if c := it.DonorContact; c != nil {
			item.DonorContact = &ContactResponse{Name: c.Name, Email: c.Email, Phone: c.Phone, City: c.City}
		}
		out[i] = item
	}
	return &ActivityResponse{
		Requests:   out,
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
}
