package shared

import (
	"context"
	"time"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Donations() DonationRepository
	Requests() RequestRepository
	Users() UserRepository
}

type DonationRepository interface {
	Create(ctx context.Context, d *donation.Donation) error
	FindByID(ctx context.Context, id uuid.UUID) (*donation.Donation, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*donation.Donation, error)
	// Update writes d only if the stored status still equals expected;
	// otherwise it fails with donation.ErrConcurrentUpdate.
	Update(ctx context.Context, d *donation.Donation, expected donation.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExpireAvailable(ctx context.Context, now time.Time) (int64, error)
}

type RequestRepository interface {
	// Create fails with request.ErrAlreadyRequested when the pair already has an active request.
	Create(ctx context.Context, r *domrequest.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*domrequest.Request, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domrequest.Request, error)
	// FindActive returns nil without error when the pair has no active request.
	FindActive(ctx context.Context, donationID, requesterID uuid.UUID) (*domrequest.Request, error)
	ListActiveByDonation(ctx context.Context, donationID uuid.UUID) ([]*domrequest.Request, error)
	Update(ctx context.Context, r *domrequest.Request, expected domrequest.Status) error
	// ListOverdue returns requested requests whose required-before time is before now.
	ListOverdue(ctx context.Context, now time.Time) ([]*domrequest.Request, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
