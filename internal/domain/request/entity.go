package request

import (
	"time"

	"foodshare-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus         = errs.Sentinel("invalid request status", errs.ErrValidation)
	ErrInvalidTab            = errs.Sentinel("invalid activity tab", errs.ErrValidation)
	ErrRequiredBeforeInPast  = errs.Sentinel("required before must not be in the past", errs.ErrValidation)
	ErrRequestNotFound       = errs.Sentinel("request not found", errs.ErrNotFound)
	ErrPendingRequestMissing = errs.Sentinel("no pending request from this organization", errs.ErrNotFound)
	ErrNotRequestOwner       = errs.Sentinel("not authorized for this request", errs.ErrForbidden)
	ErrAlreadyRequested      = errs.Sentinel("already requested", errs.ErrDuplicateRequest, errs.ErrInvalidState)
	ErrRequestNotPending     = errs.Sentinel("request is not pending", errs.ErrInvalidState)
	ErrRequestNotReserved    = errs.Sentinel("request is not reserved", errs.ErrInvalidState)
	ErrRequestClosed         = errs.Sentinel("request is already closed", errs.ErrInvalidState)
	ErrNotLapsed             = errs.Sentinel("request has not lapsed", errs.ErrInvalidState)
)

type Request struct {
	id             uuid.UUID
	donationID     uuid.UUID
	requesterID    uuid.UUID
	requiredBefore time.Time
	status         Status
	approvedAt     *time.Time
	completedAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRequest(donationID, requesterID uuid.UUID, requiredBefore, now time.Time) (*Request, error) {
	if requiredBefore.Before(now) {
		return nil, ErrRequiredBeforeInPast
	}
	return &Request{
		id:             uuid.New(),
		donationID:     donationID,
		requesterID:    requesterID,
		requiredBefore: requiredBefore,
		status:         StatusRequested,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRequest(
	id, donationID, requesterID uuid.UUID,
	requiredBefore time.Time,
	status Status,
	approvedAt, completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:             id,
		donationID:     donationID,
		requesterID:    requesterID,
		requiredBefore: requiredBefore,
		status:         status,
		approvedAt:     approvedAt,
		completedAt:    completedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Request) Clone() *Request {
	c := *r
	if r.approvedAt != nil {
		t := *r.approvedAt
		c.approvedAt = &t
	}
	if r.completedAt != nil {
		t := *r.completedAt
		c.completedAt = &t
	}
	return &c
}

func (r *Request) EnsureRequestedBy(actorID uuid.UUID) error {
	if r.requesterID != actorID {
		return ErrNotRequestOwner
	}
	return nil
}

func (r *Request) Reserve(now time.Time) error {
	if r.status != StatusRequested {
		return ErrRequestNotPending
	}
	r.status = StatusReserved
	r.approvedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Request) Fulfill(now time.Time) error {
	if r.status != StatusReserved {
		return ErrRequestNotReserved
	}
	r.status = StatusFulfilled
	if r.completedAt == nil {
		r.completedAt = &now
	}
	r.updatedAt = now
	return nil
}

func (r *Request) Cancel(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrRequestClosed
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// Reject closes a request that lost to another organization's fulfilled one.
func (r *Request) Reject(now time.Time) error {
	if !r.status.IsActive() {
		return ErrRequestClosed
	}
	r.status = StatusRejected
	r.updatedAt = now
	return nil
}

// Lapse is the sweeper transition for a pending request whose deadline passed.
func (r *Request) Lapse(now time.Time) error {
	if r.status != StatusRequested || !r.requiredBefore.Before(now) {
		return ErrNotLapsed
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Request) ID() uuid.UUID             { return r.id }
func (r *Request) DonationID() uuid.UUID     { return r.donationID }
func (r *Request) RequesterID() uuid.UUID    { return r.requesterID }
func (r *Request) RequiredBefore() time.Time { return r.requiredBefore }
func (r *Request) Status() Status            { return r.status }
func (r *Request) ApprovedAt() *time.Time    { return r.approvedAt }
func (r *Request) CompletedAt() *time.Time   { return r.completedAt }
func (r *Request) CreatedAt() time.Time      { return r.createdAt }
func (r *Request) UpdatedAt() time.Time      { return r.updatedAt }
