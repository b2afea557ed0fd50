package donation

import (
	"slices"
	"time"

	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNoItems            = errs.Sentinel("donation must contain at least one item", errs.ErrValidation)
	ErrTooManyItems       = errs.Sentinel("donation has too many items", errs.ErrValidation)
	ErrInvalidItemName    = errs.Sentinel("item name is required", errs.ErrValidation)
	ErrInvalidQuantity    = errs.Sentinel("item quantity must be greater than zero", errs.ErrValidation)
	ErrInvalidMealType    = errs.Sentinel("invalid meal type", errs.ErrValidation)
	ErrInvalidStatus      = errs.Sentinel("invalid donation status", errs.ErrValidation)
	ErrInvalidTab         = errs.Sentinel("invalid donation tab", errs.ErrValidation)
	ErrExpiryNotInFuture  = errs.Sentinel("expiry time must be in the future", errs.ErrValidation)
	ErrDescriptionTooLong = errs.Sentinel("description is too long", errs.ErrValidation)
	ErrEmptyPatch         = errs.Sentinel("no fields to update", errs.ErrValidation)

	ErrDonationNotFound = errs.Sentinel("donation not found", errs.ErrNotFound)
	ErrNotDonationOwner = errs.Sentinel("not authorized for this donation", errs.ErrForbidden)

	ErrDonationLocked      = errs.Sentinel("donation already has requests", errs.ErrInvalidState)
	ErrDonationClosed      = errs.Sentinel("donation is no longer available", errs.ErrInvalidState)
	ErrDonationNotPending  = errs.Sentinel("donation is not awaiting approval", errs.ErrInvalidState)
	ErrDonationNotReserved = errs.Sentinel("donation is not reserved", errs.ErrInvalidState)
	ErrNotExpirable        = errs.Sentinel("donation cannot expire", errs.ErrInvalidState)
	ErrConcurrentUpdate    = errs.Sentinel("donation was modified concurrently", errs.ErrInvalidState)
)

type Donation struct {
	id          uuid.UUID
	donorID     uuid.UUID
	items       []Item
	mealType    MealType
	description string
	expiryTime  time.Time
	status      Status
	requestedBy []uuid.UUID
	acceptedBy  *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDonation(donorID uuid.UUID, items []Item, mealType MealType, expiryTime time.Time, description string, now time.Time) (*Donation, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if !mealType.IsValid() {
		return nil, ErrInvalidMealType
	}
	if !expiryTime.After(now) {
		return nil, ErrExpiryNotInFuture
	}
	desc, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}

	return &Donation{
		id:          uuid.New(),
		donorID:     donorID,
		items:       slices.Clone(items),
		mealType:    mealType,
		description: desc,
		expiryTime:  expiryTime,
		status:      StatusAvailable,
		requestedBy: []uuid.UUID{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructDonation(
	id, donorID uuid.UUID,
	items []Item,
	mealType MealType,
	description string,
	expiryTime time.Time,
	status Status,
	requestedBy []uuid.UUID,
	acceptedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Donation {
	if requestedBy == nil {
		requestedBy = []uuid.UUID{}
	}
	return &Donation{
		id:          id,
		donorID:     donorID,
		items:       items,
		mealType:    mealType,
		description: description,
		expiryTime:  expiryTime,
		status:      status,
		requestedBy: requestedBy,
		acceptedBy:  acceptedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Clone returns a deep copy so stores can hand out entities without sharing slices.
func (d *Donation) Clone() *Donation {
	c := *d
	c.items = slices.Clone(d.items)
	c.requestedBy = slices.Clone(d.requestedBy)
	if d.acceptedBy != nil {
		id := *d.acceptedBy
		c.acceptedBy = &id
	}
	return &c
}

func (d *Donation) EnsureOwnedBy(actorID uuid.UUID) error {
	if d.donorID != actorID {
		return ErrNotDonationOwner
	}
	return nil
}

// IsEditable holds while nobody has requested the donation yet.
func (d *Donation) IsEditable() bool {
	return d.status == StatusAvailable && len(d.requestedBy) == 0
}

func (d *Donation) EnsureDeletable() error {
	if !d.IsEditable() {
		return ErrDonationLocked
	}
	return nil
}

type Patch struct {
	Items       *[]Item
	MealType    *MealType
	ExpiryTime  *time.Time
	Description *string
}

func (p Patch) IsEmpty() bool {
	return !patch.Any(p.Items != nil, p.MealType != nil, p.ExpiryTime != nil, p.Description != nil)
}

func (d *Donation) ApplyPatch(p Patch, now time.Time) error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if !d.IsEditable() {
		return ErrDonationLocked
	}

	next := d.Clone()
	if patch.Apply(&next.items, p.Items) {
		if err := validateItems(next.items); err != nil {
			return err
		}
		next.items = slices.Clone(next.items)
	}
	if patch.Apply(&next.mealType, p.MealType) && !next.mealType.IsValid() {
		return ErrInvalidMealType
	}
	if patch.Apply(&next.expiryTime, p.ExpiryTime) && !next.expiryTime.After(now) {
		return ErrExpiryNotInFuture
	}
	if p.Description != nil {
		desc, err := normalizeDescription(*p.Description)
		if err != nil {
			return err
		}
		next.description = desc
	}

	next.updatedAt = now
	*d = *next
	return nil
}

// AddRequester records an organization's interest. Membership is idempotent.
func (d *Donation) AddRequester(orgID uuid.UUID, now time.Time) error {
	if d.status.IsClosed() {
		return ErrDonationClosed
	}
	if !slices.Contains(d.requestedBy, orgID) {
		d.requestedBy = append(d.requestedBy, orgID)
	}
	if d.status == StatusAvailable {
		d.status = StatusRequested
	}
	d.updatedAt = now
	return nil
}

// Reserve hands the donation to one requester. Only a donation still awaiting
// approval can be reserved, so a second approval fails.
func (d *Donation) Reserve(orgID uuid.UUID, now time.Time) error {
	if d.status != StatusRequested {
		return ErrDonationNotPending
	}
	if !slices.Contains(d.requestedBy, orgID) {
		d.requestedBy = append(d.requestedBy, orgID)
	}
	d.status = StatusReserved
	d.acceptedBy = &orgID
	d.updatedAt = now
	return nil
}

func (d *Donation) Complete(now time.Time) error {
	if d.status != StatusReserved {
		return ErrDonationNotReserved
	}
	d.status = StatusCompleted
	d.updatedAt = now
	return nil
}

// RemoveRequester withdraws an organization. Losing the reserved organization
// reopens the donation. Otherwise the status stays put unless reopenWhenEmpty
// is set and nobody is left waiting.
func (d *Donation) RemoveRequester(orgID uuid.UUID, reopenWhenEmpty bool, now time.Time) {
	d.requestedBy = slices.DeleteFunc(d.requestedBy, func(id uuid.UUID) bool { return id == orgID })

	switch {
	case d.acceptedBy != nil && *d.acceptedBy == orgID:
		d.acceptedBy = nil
		if len(d.requestedBy) == 0 {
			d.status = StatusAvailable
		} else {
			d.status = StatusRequested
		}
	case reopenWhenEmpty && d.status == StatusRequested && len(d.requestedBy) == 0:
		d.status = StatusAvailable
	}
	d.updatedAt = now
}

func (d *Donation) IsExpiredAt(now time.Time) bool {
	return d.expiryTime.Before(now)
}

// Expire is the sweeper transition. Requested and reserved donations are left
// alone so a pending decision is never invalidated.
func (d *Donation) Expire(now time.Time) error {
	if d.status != StatusAvailable || !d.IsExpiredAt(now) {
		return ErrNotExpirable
	}
	d.status = StatusExpired
	d.updatedAt = now
	return nil
}

func (d *Donation) HasRequester(orgID uuid.UUID) bool {
	return slices.Contains(d.requestedBy, orgID)
}

func (d *Donation) ID() uuid.UUID            { return d.id }
func (d *Donation) DonorID() uuid.UUID       { return d.donorID }
func (d *Donation) Items() []Item            { return slices.Clone(d.items) }
func (d *Donation) MealType() MealType       { return d.mealType }
func (d *Donation) Description() string      { return d.description }
func (d *Donation) ExpiryTime() time.Time    { return d.expiryTime }
func (d *Donation) Status() Status           { return d.status }
func (d *Donation) RequestedBy() []uuid.UUID { return slices.Clone(d.requestedBy) }
func (d *Donation) AcceptedBy() *uuid.UUID   { return d.acceptedBy }
func (d *Donation) CreatedAt() time.Time     { return d.createdAt }
func (d *Donation) UpdatedAt() time.Time     { return d.updatedAt }
