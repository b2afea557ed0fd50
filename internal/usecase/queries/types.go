package queries

import (
	"time"

	"foodshare-api/internal/domain/geo"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

type UserProfileView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	City      string     `json:"city"`
	State     string     `json:"state"`
	District  string     `json:"district"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type ItemView struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type DonationView struct {
	ID          uuid.UUID   `json:"id"`
	DonorID     uuid.UUID   `json:"donor_id"`
	Items       []ItemView  `json:"items"`
	MealType    string      `json:"meal_type"`
	Description string      `json:"description"`
	ExpiryTime  time.Time   `json:"expiry_time"`
	Status      string      `json:"status"`
	RequestedBy []uuid.UUID `json:"requested_by"`
	AcceptedBy  *uuid.UUID  `json:"accepted_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// DonationCandidate is a donation joined with its donor's public location data.
type DonationCandidate struct {
	Donation      DonationView
	DonorName     string
	DonorCity     string
	DonorLocation *geo.Point
}

type DonationRequestView struct {
	RequestID        uuid.UUID `json:"request_id"`
	OrganizationID   uuid.UUID `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	City             string    `json:"city"`
	Status           string    `json:"status"`
	RequiredBefore   time.Time `json:"required_before"`
	CreatedAt        time.Time `json:"created_at"`
}

type ContactView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

type ActivityItem struct {
	RequestID      uuid.UUID    `json:"request_id"`
	Status         string       `json:"status"`
	RequiredBefore time.Time    `json:"required_before"`
	ApprovedAt     *time.Time   `json:"approved_at,omitempty"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	Donation       DonationView `json:"donation"`
	DonorContact   *ContactView `json:"donor_contact,omitempty"`
}

type Page[T any] struct {
	Results    []T
	Total      int
	Page       int
	Limit      int
	TotalPages int
}
