package request

import (
	"time"

	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/domain/matching"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SearchItemRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
}

type SearchRequest struct {
	Latitude       *float64            `json:"latitude" binding:"required_with=Longitude,omitempty,gte=-90,lte=90"`
	Longitude      *float64            `json:"longitude" binding:"required_with=Latitude,omitempty,gte=-180,lte=180"`
	Items          []SearchItemRequest `json:"items" binding:"max=50,dive"`
	RadiusKm       float64             `json:"radiusKm" binding:"gte=0,lte=500"`
	MealType       string              `json:"mealType" binding:"omitempty,oneof=breakfast lunch dinner snacks fruits other"`
	RequiredBefore *time.Time          `json:"requiredBefore"`
	Page           int                 `json:"page" binding:"omitempty,min=1"`
	Limit          int                 `json:"limit" binding:"omitempty,min=1"`
}

func (r SearchRequest) ToParams() queries.SearchParams {
	params := queries.SearchParams{
		RadiusKm:       r.RadiusKm,
		MealType:       r.MealType,
		RequiredBefore: r.RequiredBefore,
		Pagination:     queries.Pagination{Page: r.Page, Limit: r.Limit},
	}
	if r.Latitude != nil && r.Longitude != nil {
		params.Location = &geo.Point{Lat: *r.Latitude, Lon: *r.Longitude}
	}
	if len(r.Items) > 0 {
		params.RequestedItems = make([]matching.Item, len(r.Items))
		for i, it := range r.Items {
			params.RequestedItems[i] = matching.Item{Name: it.Name, Quantity: it.Quantity}
		}
	}
	return params
}

type RequestDonationRequest struct {
	DonationID     uuid.UUID `json:"donationId" binding:"required"`
	RequiredBefore time.Time `json:"requiredBefore" binding:"required"`
}

type ApproveDonationRequest struct {
	DonationID     uuid.UUID `json:"donationId" binding:"required"`
	OrganizationID uuid.UUID `json:"organizationId" binding:"required"`
}

type CompleteMatchRequest struct {
	RequestID uuid.UUID `json:"requestId" binding:"required"`
}

type CancelRequestRequest struct {
	RequestID uuid.UUID `json:"requestId" binding:"required"`
}

type ActivityQuery struct {
	Tab   string `form:"tab" binding:"omitempty,oneof=ongoing completed"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

func (q ActivityQuery) ToFilter() queries.ActivityFilter {
	return queries.ActivityFilter{
		Tab:        q.Tab,
		Pagination: queries.Pagination{Page: q.Page, Limit: q.Limit},
	}
}
