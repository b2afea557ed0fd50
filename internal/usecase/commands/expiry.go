package commands

import (
	"context"
	"time"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExpiryCommands interface {
	// ExpireDonations moves available donations past their expiry to expired.
	ExpireDonations(ctx context.Context) (int64, error)
	// ExpireRequests cancels pending requests whose required-before time passed
	// and releases their requesters from the donation.
	ExpireRequests(ctx context.Context) (int64, error)
}

type expiryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExpiryCommands(uow shared.UnitOfWork, clk clock.Clock) ExpiryCommands {
	return &expiryCommandsImpl{uow: uow, clock: clk}
}

func (e *expiryCommandsImpl) ExpireDonations(ctx context.Context) (int64, error) {
	var n int64
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Donations().ExpireAvailable(ctx, e.clock.Now())
		return err
	})
	return n, err
}

func (e *expiryCommandsImpl) ExpireRequests(ctx context.Context) (int64, error) {
	now := e.clock.Now()

	var overdue []*domrequest.Request
	err := e.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		overdue, err = tx.Requests().ListOverdue(ctx, now)
		return err
	})
	if err != nil {
		return 0, err
	}

	var (
		lapsed   int64
		firstErr error
	)
	for _, r := range overdue {
		ok, err := e.lapse(ctx, r.ID(), r.DonationID(), now)
		if err != nil {
			if firstErr == nil {
				firstErr = errs.Wrapf(err, "lapse request %s", r.ID())
			}
			continue
		}
		if ok {
			lapsed++
		}
	}
	return lapsed, firstErr
}

// lapse cancels one overdue request and removes its requester from the
// donation in the same unit. A requested donation left with no requesters
// goes back to available.
func (e *expiryCommandsImpl) lapse(ctx context.Context, requestID, donationID uuid.UUID, now time.Time) (bool, error) {
	var lapsed bool
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Donations().FindByIDForUpdate(ctx, donationID)
		if err != nil {
			if errs.Is(err, donation.ErrDonationNotFound) {
				return nil
			}
			return err
		}
		r, err := tx.Requests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			if errs.Is(err, domrequest.ErrRequestNotFound) {
				return nil
			}
			return err
		}
		if err := r.Lapse(now); err != nil {
			// cancelled or approved since it was listed
			if errs.Is(err, domrequest.ErrNotLapsed) {
				return nil
			}
			return err
		}

		prevDonation := d.Status()
		d.RemoveRequester(r.RequesterID(), true, now)

		if err := tx.Requests().Update(ctx, r, domrequest.StatusRequested); err != nil {
			return err
		}
		if err := tx.Donations().Update(ctx, d, prevDonation); err != nil {
			return err
		}
		lapsed = true
		return nil
	})
	return lapsed, err
}
