package response

import (
	"log/slog"
	"time"

	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type DonationResponse struct {
	ID          uuid.UUID      `json:"id"`
	DonorID     uuid.UUID      `json:"donorId"`
	Items       []ItemResponse `json:"items"`
	MealType    string         `json:"mealType"`
	Description string         `json:"description,omitempty"`
	ExpiryTime  time.Time      `json:"expiryTime"`
	Status      string         `json:"status"`
	RequestedBy []uuid.UUID    `json:"requestedBy"`
	AcceptedBy  *uuid.UUID     `json:"acceptedBy,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func FromDonationView(v *queries.DonationView) *DonationResponse {
	requestedBy := v.RequestedBy
	if requestedBy == nil {
		requestedBy = []uuid.UUID{}
	}
	return &DonationResponse{
		ID:          v.ID,
		DonorID:     v.DonorID,
		Items:       fromItemViews(v.Items),
		MealType:    v.MealType,
		Description: v.Description,
		ExpiryTime:  v.ExpiryTime,
		Status:      v.Status,
		RequestedBy: requestedBy,
		AcceptedBy:  v.AcceptedBy,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type DonationListResponse struct {
	Donations  []*DonationResponse `json:"donations"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
}

func FromDonationPage(p *queries.Page[*queries.DonationView]) *DonationListResponse {
	out := make([]*DonationResponse, len(p.Results))
	for i, v := range p.Results {
		out[i] = FromDonationView(v)
	}
	return &DonationListResponse{
		Donations:  out,
		Total:      p.Total,
		Page:       p.Page,
		TotalPages: p.TotalPages,
	}
}

type CreateDonationResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type DonationRequestResponse struct {
	RequestID        uuid.UUID `json:"requestId"`
	OrganizationID   uuid.UUID `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	City             string    `json:"city,omitempty"`
	Status           string    `json:"status"`
	RequiredBefore   time.Time `json:"requiredBefore"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromDonationRequestViews(views []*queries.DonationRequestView) []*DonationRequestResponse {
	out := make([]*DonationRequestResponse, len(views))
	for i, v := range views {
		out[i] = &DonationRequestResponse{
			RequestID:        v.RequestID,
			OrganizationID:   v.OrganizationID,
			OrganizationName: v.OrganizationName,
			City:             v.City,
			Status:           v.Status,
			RequiredBefore:   v.RequiredBefore,
			CreatedAt:        v.CreatedAt,
		}
	}
	return out
}

func fromItemViews(items []queries.ItemView) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		slog.Warn("failed to map donation items", "error", err.Error())
	}
	return out
}
