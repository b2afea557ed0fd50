//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/infra/memstore"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/usecase/shared"
	"foodshare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type donationFixture struct {
	store    *memstore.Store
	uow      shared.UnitOfWork
	clock    *clock.MockClock
	commands commands.DonationCommands
}

func newDonationFixture() *donationFixture {
	store := memstore.New()
	uow := memstore.NewUoW(store)
	clk := clock.NewMockClock(builder.FixedNow)
	return &donationFixture{
		store:    store,
		uow:      uow,
		clock:    clk,
		commands: commands.NewDonationCommands(uow, clk),
	}
}

func (f *donationFixture) find(t *testing.T, id uuid.UUID) (*donation.Donation, error) {
	t.Helper()
	var d *donation.Donation
	err := f.uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		d, err = tx.Donations().FindByID(ctx, id)
		return err
	})
	return d, err
}

func validInput() commands.CreateDonationInput {
	return commands.CreateDonationInput{
		Items:       []commands.ItemInput{{Name: "Rice", Quantity: 10, Unit: "kg"}},
		MealType:    "lunch",
		ExpiryTime:  builder.FixedNow.Add(6 * time.Hour),
		Description: "  leftover from event  ",
	}
}

func TestDonationCommands_CreateDonation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *commands.CreateDonationInput)
		wantErr error
	}{
		{name: "valid"},
		{
			name:    "no items",
			mutate:  func(in *commands.CreateDonationInput) { in.Items = nil },
			wantErr: donation.ErrNoItems,
		},
		{
			name:    "zero quantity",
			mutate:  func(in *commands.CreateDonationInput) { in.Items[0].Quantity = 0 },
			wantErr: donation.ErrInvalidQuantity,
		},
		{
			name:    "unknown meal type",
			mutate:  func(in *commands.CreateDonationInput) { in.MealType = "brunch" },
			wantErr: donation.ErrInvalidMealType,
		},
		{
			name:    "expiry equal to now",
			mutate:  func(in *commands.CreateDonationInput) { in.ExpiryTime = builder.FixedNow },
			wantErr: donation.ErrExpiryNotInFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDonationFixture()
			in := validInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			donorID := uuid.New()

			res, err := f.commands.CreateDonation(context.Background(), donorID, in)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			d, err := f.find(t, res.DonationID)
			require.NoError(t, err)
			assert.Equal(t, donorID, d.DonorID())
			assert.Equal(t, donation.StatusAvailable, d.Status())
			assert.Empty(t, d.RequestedBy())
			assert.Nil(t, d.AcceptedBy())
			assert.Equal(t, "leftover from event", d.Description())
			assert.Equal(t, builder.FixedNow, d.CreatedAt())
		})
	}
}

func TestDonationCommands_UpdateDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("patch leaves omitted fields untouched", func(t *testing.T) {
		f := newDonationFixture()
		donorID := uuid.New()
		res, err := f.commands.CreateDonation(ctx, donorID, validInput())
		require.NoError(t, err)
		f.clock.Add(time.Minute)
		meal := "dinner"

		err = f.commands.UpdateDonation(ctx, res.DonationID, donorID, commands.UpdateDonationInput{MealType: &meal})

		require.NoError(t, err)
		d, err := f.find(t, res.DonationID)
		require.NoError(t, err)
		assert.Equal(t, donation.MealDinner, d.MealType())
		assert.Len(t, d.Items(), 1)
		assert.Equal(t, builder.FixedNow.Add(6*time.Hour), d.ExpiryTime())
		assert.Equal(t, builder.FixedNow.Add(time.Minute), d.UpdatedAt())
	})

	t.Run("empty patch", func(t *testing.T) {
		f := newDonationFixture()
		donorID := uuid.New()
		res, err := f.commands.CreateDonation(ctx, donorID, validInput())
		require.NoError(t, err)

		err = f.commands.UpdateDonation(ctx, res.DonationID, donorID, commands.UpdateDonationInput{})

		assert.ErrorIs(t, err, donation.ErrEmptyPatch)
	})

	t.Run("non-owner", func(t *testing.T) {
		f := newDonationFixture()
		res, err := f.commands.CreateDonation(ctx, uuid.New(), validInput())
		require.NoError(t, err)
		desc := "mine now"

		err = f.commands.UpdateDonation(ctx, res.DonationID, uuid.New(), commands.UpdateDonationInput{Description: &desc})

		assert.ErrorIs(t, err, donation.ErrNotDonationOwner)
	})

	t.Run("locked once requested", func(t *testing.T) {
		f := newDonationFixture()
		d := builder.NewDonationBuilder().
			WithStatus(donation.StatusRequested).
			WithRequestedBy(uuid.New()).
			BuildReconstructed()
		require.NoError(t, f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Donations().Create(ctx, d)
		}))
		desc := "too late"

		err := f.commands.UpdateDonation(ctx, d.ID(), d.DonorID(), commands.UpdateDonationInput{Description: &desc})

		assert.ErrorIs(t, err, donation.ErrDonationLocked)
	})
}

func TestDonationCommands_DeleteDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes an untouched donation", func(t *testing.T) {
		f := newDonationFixture()
		donorID := uuid.New()
		res, err := f.commands.CreateDonation(ctx, donorID, validInput())
		require.NoError(t, err)

		require.NoError(t, f.commands.DeleteDonation(ctx, res.DonationID, donorID))

		_, err = f.find(t, res.DonationID)
		assert.ErrorIs(t, err, donation.ErrDonationNotFound)
	})

	t.Run("requested donation cannot be deleted", func(t *testing.T) {
		f := newDonationFixture()
		d := builder.NewDonationBuilder().
			WithStatus(donation.StatusRequested).
			WithRequestedBy(uuid.New()).
			BuildReconstructed()
		require.NoError(t, f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Donations().Create(ctx, d)
		}))

		err := f.commands.DeleteDonation(ctx, d.ID(), d.DonorID())

		assert.ErrorIs(t, err, donation.ErrDonationLocked)
		_, err = f.find(t, d.ID())
		assert.NoError(t, err)
	})

	t.Run("missing donation", func(t *testing.T) {
		f := newDonationFixture()
		err := f.commands.DeleteDonation(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, donation.ErrDonationNotFound)
	})
}

func TestExpiryCommands(t *testing.T) {
	ctx := context.Background()
	f := newDonationFixture()
	expiry := commands.NewExpiryCommands(f.uow, f.clock)
	orgA, orgB, orgC := uuid.New(), uuid.New(), uuid.New()

	stale := builder.NewDonationBuilder().WithExpiryIn(time.Hour).MustBuildDomain()
	fresh := builder.NewDonationBuilder().WithExpiryIn(3 * time.Hour).MustBuildDomain()
	// requested past its own expiry; only the sweep of its request may reopen it
	pending := builder.NewDonationBuilder().
		WithExpiryIn(time.Hour).
		WithStatus(donation.StatusRequested).
		WithRequestedBy(orgA).
		BuildReconstructed()
	// reopened by the lapse and still deletable afterwards
	abandoned := builder.NewDonationBuilder().
		WithExpiryIn(5 * time.Hour).
		WithStatus(donation.StatusRequested).
		WithRequestedBy(orgB).
		BuildReconstructed()
	reserved := builder.NewDonationBuilder().
		WithExpiryIn(5 * time.Hour).
		WithStatus(donation.StatusReserved).
		WithRequestedBy(orgA, orgC).
		WithAcceptedBy(orgA).
		BuildReconstructed()

	overdue := func(d *donation.Donation, org uuid.UUID) *domrequest.Request {
		return builder.NewRequestBuilder().
			WithDonationID(d.ID()).
			WithRequesterID(org).
			WithRequiredBefore(builder.FixedNow.Add(30 * time.Minute)).
			BuildReconstructed()
	}
	pendingReq := overdue(pending, orgA)
	abandonedReq := overdue(abandoned, orgB)
	waitingReq := overdue(reserved, orgC)
	approvedReq := builder.NewRequestBuilder().
		WithDonationID(reserved.ID()).
		WithRequesterID(orgA).
		WithRequiredBefore(builder.FixedNow.Add(30 * time.Minute)).
		WithStatus(domrequest.StatusReserved).
		BuildReconstructed()

	require.NoError(t, f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, d := range []*donation.Donation{stale, fresh, pending, abandoned, reserved} {
			if err := tx.Donations().Create(ctx, d); err != nil {
				return err
			}
		}
		for _, r := range []*domrequest.Request{pendingReq, abandonedReq, waitingReq, approvedReq} {
			if err := tx.Requests().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}))

	f.clock.Add(2 * time.Hour)

	n, err := expiry.ExpireDonations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	got, err := f.find(t, pending.ID())
	require.NoError(t, err)
	assert.Equal(t, donation.StatusRequested, got.Status())

	n, err = expiry.ExpireRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	t.Run("lapsed requests are cancelled and the approved one is untouched", func(t *testing.T) {
		require.NoError(t, f.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			for _, r := range []*domrequest.Request{pendingReq, abandonedReq, waitingReq} {
				stored, err := tx.Requests().FindByID(ctx, r.ID())
				require.NoError(t, err)
				assert.Equal(t, domrequest.StatusCancelled, stored.Status())
			}
			stored, err := tx.Requests().FindByID(ctx, approvedReq.ID())
			require.NoError(t, err)
			assert.Equal(t, domrequest.StatusReserved, stored.Status())
			return nil
		}))
	})

	t.Run("a donation left without requesters reopens", func(t *testing.T) {
		got, err := f.find(t, abandoned.ID())
		require.NoError(t, err)
		assert.Equal(t, donation.StatusAvailable, got.Status())
		assert.Empty(t, got.RequestedBy())

		require.NoError(t, f.commands.DeleteDonation(ctx, abandoned.ID(), abandoned.DonorID()))
	})

	t.Run("a reserved donation only loses the lapsed requester", func(t *testing.T) {
		got, err := f.find(t, reserved.ID())
		require.NoError(t, err)
		assert.Equal(t, donation.StatusReserved, got.Status())
		assert.Equal(t, []uuid.UUID{orgA}, got.RequestedBy())
		require.NotNil(t, got.AcceptedBy())
		assert.Equal(t, orgA, *got.AcceptedBy())
	})

	t.Run("reopened donations past expiry expire on the next sweep", func(t *testing.T) {
		n, err := expiry.ExpireDonations(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := f.find(t, pending.ID())
		require.NoError(t, err)
		assert.Equal(t, donation.StatusExpired, got.Status())
		got, err = f.find(t, fresh.ID())
		require.NoError(t, err)
		assert.Equal(t, donation.StatusAvailable, got.Status())

		n, err = expiry.ExpireRequests(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
