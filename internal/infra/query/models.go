package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Donations struct {
	ID          uuid.UUID
	DonorID     uuid.UUID
	Items       []Item
	MealType    string
	Description string
	ExpiryTime  pgtype.Timestamptz
	Status      string
	RequestedBy []uuid.UUID
	AcceptedBy  pgtype.UUID
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type DonationRequests struct {
	ID             uuid.UUID
	DonationID     uuid.UUID
	RequesterID    uuid.UUID
	RequiredBefore pgtype.Timestamptz
	Status         string
	ApprovedAt     pgtype.Timestamptz
	CompletedAt    pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type Users struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Name         string
	Phone        string
	Latitude     pgtype.Float8
	Longitude    pgtype.Float8
	City         string
	State        string
	District     string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}
