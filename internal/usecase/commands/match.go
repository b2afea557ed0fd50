package commands

//go:generate mockgen -source=match.go -destination=../../../tests/mock/commands/match.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type MatchPolicy struct {
	// ReopenWhenUnrequested reverts a requested donation to available once its
	// last requester cancels.
	ReopenWhenUnrequested bool
}

type RequestDonationResult struct {
	RequestID      uuid.UUID
	DonationStatus donation.Status
}

type ApproveDonationResult struct {
	RequestID      uuid.UUID
	DonationStatus donation.Status
}

type CompleteMatchResult struct {
	DonationID         uuid.UUID
	RejectedRequestIDs []uuid.UUID
}

type CancelRequestResult struct {
	DonationID     uuid.UUID
	DonationStatus donation.Status
}

type MatchCommands interface {
	RequestDonation(ctx context.Context, donationID, requesterID uuid.UUID, requiredBefore time.Time) (*RequestDonationResult, error)
	ApproveDonation(ctx context.Context, donationID, organizationID, actingDonorID uuid.UUID) (*ApproveDonationResult, error)
	CompleteMatch(ctx context.Context, requestID, actingRequesterID uuid.UUID) (*CompleteMatchResult, error)
	CancelRequest(ctx context.Context, requestID, actingRequesterID uuid.UUID) (*CancelRequestResult, error)
}

type matchCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	directory shared.UserDirectory
	notifier  shared.Notifier
	policy    MatchPolicy
}

func NewMatchCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	directory shared.UserDirectory,
	notifier shared.Notifier,
	policy MatchPolicy,
) MatchCommands {
	return &matchCommandsImpl{
		uow:       uow,
		clock:     clk,
		directory: directory,
		notifier:  notifier,
		policy:    policy,
	}
}

func (m *matchCommandsImpl) RequestDonation(ctx context.Context, donationID, requesterID uuid.UUID, requiredBefore time.Time) (*RequestDonationResult, error) {
	now := m.clock.Now()
	req, err := domrequest.NewRequest(donationID, requesterID, requiredBefore, now)
	if err != nil {
		return nil, err
	}

	var status donation.Status
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Donations().FindByIDForUpdate(ctx, donationID)
		if err != nil {
			return err
		}

		prev := d.Status()
		if err := d.AddRequester(requesterID, now); err != nil {
			return err
		}

		existing, err := tx.Requests().FindActive(ctx, donationID, requesterID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domrequest.ErrAlreadyRequested
		}

		if err := tx.Requests().Create(ctx, req); err != nil {
			return err
		}
		status = d.Status()
		return tx.Donations().Update(ctx, d, prev)
	})
	if err != nil {
		return nil, err
	}

	return &RequestDonationResult{RequestID: req.ID(), DonationStatus: status}, nil
}

func (m *matchCommandsImpl) ApproveDonation(ctx context.Context, donationID, organizationID, actingDonorID uuid.UUID) (*ApproveDonationResult, error) {
	now := m.clock.Now()

	var result ApproveDonationResult
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Donations().FindByIDForUpdate(ctx, donationID)
		if err != nil {
			return err
		}
		if err := d.EnsureOwnedBy(actingDonorID); err != nil {
			return err
		}
		switch d.Status() {
		case donation.StatusRequested:
		case donation.StatusAvailable:
			// an available donation has no requesters, so no request can be approved
			return domrequest.ErrPendingRequestMissing
		default:
			return donation.ErrDonationNotPending
		}

		r, err := tx.Requests().FindActive(ctx, donationID, organizationID)
		if err != nil {
			return err
		}
		if r == nil || r.Status() != domrequest.StatusRequested {
			return domrequest.ErrPendingRequestMissing
		}

		prevDonation := d.Status()
		if err := r.Reserve(now); err != nil {
			return err
		}
		if err := d.Reserve(organizationID, now); err != nil {
			return err
		}

		if err := tx.Requests().Update(ctx, r, domrequest.StatusRequested); err != nil {
			return err
		}
		if err := tx.Donations().Update(ctx, d, prevDonation); err != nil {
			return err
		}

		result = ApproveDonationResult{RequestID: r.ID(), DonationStatus: d.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.notifyApproved(ctx, actingDonorID, organizationID, donationID)
	return &result, nil
}

func (m *matchCommandsImpl) CompleteMatch(ctx context.Context, requestID, actingRequesterID uuid.UUID) (*CompleteMatchResult, error) {
	now := m.clock.Now()

	var (
		result  CompleteMatchResult
		donorID uuid.UUID
	)
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := m.lockRequest(ctx, tx, requestID, actingRequesterID)
		if err != nil {
			return err
		}
		d := r.donation

		if err := r.req.Fulfill(now); err != nil {
			return err
		}
		prevDonation := d.Status()
		if err := d.Complete(now); err != nil {
			return err
		}

		siblings, err := tx.Requests().ListActiveByDonation(ctx, d.ID())
		if err != nil {
			return err
		}
		rejected := make([]uuid.UUID, 0, len(siblings))
		for _, s := range siblings {
			if s.ID() == r.req.ID() {
				continue
			}
			prev := s.Status()
			if err := s.Reject(now); err != nil {
				return err
			}
			if err := tx.Requests().Update(ctx, s, prev); err != nil {
				return err
			}
			rejected = append(rejected, s.ID())
		}

		if err := tx.Requests().Update(ctx, r.req, domrequest.StatusReserved); err != nil {
			return err
		}
		if err := tx.Donations().Update(ctx, d, prevDonation); err != nil {
			return err
		}

		donorID = d.DonorID()
		result = CompleteMatchResult{DonationID: d.ID(), RejectedRequestIDs: rejected}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.notifyCompleted(ctx, donorID, actingRequesterID, result.DonationID)
	return &result, nil
}

func (m *matchCommandsImpl) CancelRequest(ctx context.Context, requestID, actingRequesterID uuid.UUID) (*CancelRequestResult, error) {
	now := m.clock.Now()

	var result CancelRequestResult
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := m.lockRequest(ctx, tx, requestID, actingRequesterID)
		if err != nil {
			return err
		}
		d := r.donation

		prevRequest := r.req.Status()
		if err := r.req.Cancel(now); err != nil {
			return err
		}
		prevDonation := d.Status()
		d.RemoveRequester(actingRequesterID, m.policy.ReopenWhenUnrequested, now)

		if err := tx.Requests().Update(ctx, r.req, prevRequest); err != nil {
			return err
		}
		if err := tx.Donations().Update(ctx, d, prevDonation); err != nil {
			return err
		}

		result = CancelRequestResult{DonationID: d.ID(), DonationStatus: d.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type lockedRequest struct {
	req      *domrequest.Request
	donation *donation.Donation
}

// lockRequest locks the donation row before the request row, the same order
// RequestDonation and ApproveDonation use.
func (m *matchCommandsImpl) lockRequest(ctx context.Context, tx shared.Tx, requestID, actorID uuid.UUID) (*lockedRequest, error) {
	unlocked, err := tx.Requests().FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := unlocked.EnsureRequestedBy(actorID); err != nil {
		return nil, err
	}

	d, err := tx.Donations().FindByIDForUpdate(ctx, unlocked.DonationID())
	if err != nil {
		return nil, err
	}
	r, err := tx.Requests().FindByIDForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &lockedRequest{req: r, donation: d}, nil
}

func (m *matchCommandsImpl) notifyApproved(ctx context.Context, donorID, orgID, donationID uuid.UUID) {
	donor, org, ok := m.loadParties(ctx, donorID, orgID)
	if !ok {
		return
	}
	m.send(ctx, approvalNotice(donor, org, donationID))
}

func (m *matchCommandsImpl) notifyCompleted(ctx context.Context, donorID, orgID, donationID uuid.UUID) {
	donor, org, ok := m.loadParties(ctx, donorID, orgID)
	if !ok {
		return
	}
	m.send(ctx, completionNotice(donor, org, donationID))
}

func (m *matchCommandsImpl) loadParties(ctx context.Context, donorID, orgID uuid.UUID) (*shared.Contact, *shared.Contact, bool) {
	donor, err := m.directory.ContactByID(ctx, donorID)
	if err != nil {
		slog.Warn("notification skipped: donor lookup failed", "user_id", donorID, "error", err.Error())
		return nil, nil, false
	}
	org, err := m.directory.ContactByID(ctx, orgID)
	if err != nil {
		slog.Warn("notification skipped: organization lookup failed", "user_id", orgID, "error", err.Error())
		return nil, nil, false
	}
	return donor, org, true
}

func (m *matchCommandsImpl) send(ctx context.Context, msg shared.Message) {
	if msg.To == "" {
		return
	}
	if err := m.notifier.Notify(ctx, msg); err != nil {
		slog.Warn("notification dispatch failed", "subject", msg.Subject, "error", err.Error())
	}
}
