//go:build unit || e2e

package builder

import (
	"time"

	domrequest "foodshare-api/internal/domain/request"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID             uuid.UUID
	DonationID     uuid.UUID
	RequesterID    uuid.UUID
	RequiredBefore time.Time
	Status         domrequest.Status
	ApprovedAt     *time.Time
	CompletedAt    *time.Time
	Now            time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:             uuid.New(),
		DonationID:     uuid.New(),
		RequesterID:    uuid.New(),
		RequiredBefore: FixedNow.Add(2 * time.Hour),
		Status:         domrequest.StatusRequested,
		Now:            FixedNow,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RequestBuilder) BuildDomain() (*domrequest.Request, error) {
	return domrequest.NewRequest(b.DonationID, b.RequesterID, b.RequiredBefore, b.Now)
}

func (b *RequestBuilder) BuildReconstructed() *domrequest.Request {
	return domrequest.ReconstructRequest(
		b.ID, b.DonationID, b.RequesterID, b.RequiredBefore, b.Status,
		b.ApprovedAt, b.CompletedAt, b.Now, b.Now,
	)
}

// Fluent builder methods
func (b *RequestBuilder) WithDonationID(id uuid.UUID) *RequestBuilder {
	b.DonationID = id
	return b
}

func (b *RequestBuilder) WithRequesterID(id uuid.UUID) *RequestBuilder {
	b.RequesterID = id
	return b
}

func (b *RequestBuilder) WithRequiredBefore(t time.Time) *RequestBuilder {
	b.RequiredBefore = t
	return b
}

func (b *RequestBuilder) WithStatus(status domrequest.Status) *RequestBuilder {
	b.Status = status
	return b
}
