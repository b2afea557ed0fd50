package commands

//go:generate mockgen -source=donation.go -destination=../../../tests/mock/commands/donation.go -package=commandsmock

import (
	"context"
	"time"

	"foodshare-api/internal/domain/donation"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemInput struct {
	Name     string
	Quantity float64
	Unit     string
}

type CreateDonationInput struct {
	Items       []ItemInput
	MealType    string
	ExpiryTime  time.Time
	Description string
}

// UpdateDonationInput is a patch: nil fields are left untouched.
type UpdateDonationInput struct {
	Items       *[]ItemInput
	MealType    *string
	ExpiryTime  *time.Time
	Description *string
}

type CreateDonationResult struct {
	DonationID uuid.UUID
}

type DonationCommands interface {
	CreateDonation(ctx context.Context, donorID uuid.UUID, in CreateDonationInput) (*CreateDonationResult, error)
	UpdateDonation(ctx context.Context, donationID, actorID uuid.UUID, in UpdateDonationInput) error
	DeleteDonation(ctx context.Context, donationID, actorID uuid.UUID) error
}

type donationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDonationCommands(uow shared.UnitOfWork, clk clock.Clock) DonationCommands {
	return &donationCommandsImpl{uow: uow, clock: clk}
}

func (c *donationCommandsImpl) CreateDonation(ctx context.Context, donorID uuid.UUID, in CreateDonationInput) (*CreateDonationResult, error) {
	items, err := toDomainItems(in.Items)
	if err != nil {
		return nil, err
	}
	mealType, err := donation.ParseMealType(in.MealType)
	if err != nil {
		return nil, err
	}

	d, err := donation.NewDonation(donorID, items, mealType, in.ExpiryTime, in.Description, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Donations().Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	return &CreateDonationResult{DonationID: d.ID()}, nil
}

func (c *donationCommandsImpl) UpdateDonation(ctx context.Context, donationID, actorID uuid.UUID, in UpdateDonationInput) error {
	p, err := toDomainPatch(in)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Donations().FindByIDForUpdate(ctx, donationID)
		if err != nil {
			return err
		}
		if err := d.EnsureOwnedBy(actorID); err != nil {
			return err
		}

		prev := d.Status()
		if err := d.ApplyPatch(p, c.clock.Now()); err != nil {
			return err
		}
		return tx.Donations().Update(ctx, d, prev)
	})
}

func (c *donationCommandsImpl) DeleteDonation(ctx context.Context, donationID, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Donations().FindByIDForUpdate(ctx, donationID)
		if err != nil {
			return err
		}
		if err := d.EnsureOwnedBy(actorID); err != nil {
			return err
		}
		if err := d.EnsureDeletable(); err != nil {
			return err
		}
		return tx.Donations().Delete(ctx, donationID)
	})
}

func toDomainItems(in []ItemInput) ([]donation.Item, error) {
	items := make([]donation.Item, 0, len(in))
	for _, it := range in {
		item, err := donation.NewItem(it.Name, it.Quantity, it.Unit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toDomainPatch(in UpdateDonationInput) (donation.Patch, error) {
	var p donation.Patch
	if in.Items != nil {
		items, err := toDomainItems(*in.Items)
		if err != nil {
			return donation.Patch{}, err
		}
		p.Items = &items
	}
	if in.MealType != nil {
		m, err := donation.ParseMealType(*in.MealType)
		if err != nil {
			return donation.Patch{}, err
		}
		p.MealType = &m
	}
	p.ExpiryTime = in.ExpiryTime
	p.Description = in.Description
	return p, nil
}
