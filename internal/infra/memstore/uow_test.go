//go:build unit

package memstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"
	"foodshare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithin_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := New()
	uow := NewUoW(store)
	d := builder.NewDonationBuilder().MustBuildDomain()

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Donations().Create(ctx, d))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewDonationReadStore(store).FindByID(ctx, d.ID())
	assert.ErrorIs(t, err, donation.ErrDonationNotFound)
}

func TestWithin_CommitIsolatesCallerCopies(t *testing.T) {
	ctx := context.Background()
	store := New()
	uow := NewUoW(store)
	d := builder.NewDonationBuilder().MustBuildDomain()

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Donations().Create(ctx, d)
	}))

	// mutating the caller's entity after commit must not leak into the store
	require.NoError(t, d.AddRequester(builder.NewRequestBuilder().RequesterID, builder.FixedNow))

	view, err := NewDonationReadStore(store).FindByID(ctx, d.ID())
	require.NoError(t, err)
	assert.Equal(t, "available", view.Status)
	assert.Empty(t, view.RequestedBy)
}

func TestDonationRepo_UpdateDetectsStaleStatus(t *testing.T) {
	ctx := context.Background()
	store := New()
	uow := NewUoW(store)
	d := builder.NewDonationBuilder().MustBuildDomain()

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Donations().Create(ctx, d)
	}))

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Donations().Update(ctx, d, donation.StatusRequested)
	})
	assert.ErrorIs(t, err, donation.ErrConcurrentUpdate)
}

func TestRequestRepo_CreateRejectsActivePair(t *testing.T) {
	ctx := context.Background()
	uow := NewUoW(New())
	first := builder.NewRequestBuilder().BuildReconstructed()
	second := builder.NewRequestBuilder().
		WithDonationID(first.DonationID()).
		WithRequesterID(first.RequesterID()).
		BuildReconstructed()

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Requests().Create(ctx, first)
	}))
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Requests().Create(ctx, second)
	})
	require.ErrorIs(t, err, domrequest.ErrAlreadyRequested)

	// a terminal request frees the pair
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Requests().FindByIDForUpdate(ctx, first.ID())
		if err != nil {
			return err
		}
		if err := r.Cancel(builder.FixedNow); err != nil {
			return err
		}
		if err := tx.Requests().Update(ctx, r, domrequest.StatusRequested); err != nil {
			return err
		}
		return tx.Requests().Create(ctx, second)
	}))
}

func TestDonationRepo_DeleteCascadesRequests(t *testing.T) {
	ctx := context.Background()
	store := New()
	uow := NewUoW(store)
	d := builder.NewDonationBuilder().MustBuildDomain()
	r := builder.NewRequestBuilder().WithDonationID(d.ID()).WithStatus(domrequest.StatusCancelled).BuildReconstructed()

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Donations().Create(ctx, d); err != nil {
			return err
		}
		return tx.Requests().Create(ctx, r)
	}))
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Donations().Delete(ctx, d.ID())
	}))

	err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Requests().FindByID(ctx, r.ID())
		return err
	})
	assert.ErrorIs(t, err, domrequest.ErrRequestNotFound)
}

func TestWithinReadOnly_RejectsWrites(t *testing.T) {
	ctx := context.Background()
	uow := NewUoW(New())

	err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Donations().Create(ctx, builder.NewDonationBuilder().MustBuildDomain())
	})
	assert.ErrorIs(t, err, errReadOnly)
}

func TestSweepQueries(t *testing.T) {
	ctx := context.Background()
	store := New()
	uow := NewUoW(store)
	now := builder.FixedNow

	stale := builder.NewDonationBuilder().WithExpiryIn(-time.Minute).BuildReconstructed()
	boundary := builder.NewDonationBuilder().WithExpiryIn(0).BuildReconstructed()
	pending := builder.NewDonationBuilder().WithExpiryIn(-time.Minute).WithStatus(donation.StatusRequested).BuildReconstructed()
	overdue := builder.NewRequestBuilder().WithRequiredBefore(now.Add(-time.Second)).BuildReconstructed()
	reserved := builder.NewRequestBuilder().WithRequiredBefore(now.Add(-time.Second)).WithStatus(domrequest.StatusReserved).BuildReconstructed()

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, d := range []*donation.Donation{stale, boundary, pending} {
			if err := tx.Donations().Create(ctx, d); err != nil {
				return err
			}
		}
		for _, r := range []*domrequest.Request{overdue, reserved} {
			if err := tx.Requests().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}))

	var expired int64
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		expired, err = tx.Donations().ExpireAvailable(ctx, now)
		return err
	}))
	var overdueIDs []uuid.UUID
	require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Requests().ListOverdue(ctx, now)
		for _, r := range found {
			overdueIDs = append(overdueIDs, r.ID())
		}
		return err
	}))

	assert.Equal(t, int64(1), expired)
	assert.Equal(t, []uuid.UUID{overdue.ID()}, overdueIDs)
	assert.Equal(t, donation.StatusExpired, store.donations[stale.ID()].Status())
	assert.Equal(t, donation.StatusAvailable, store.donations[boundary.ID()].Status())
	assert.Equal(t, donation.StatusRequested, store.donations[pending.ID()].Status())
	assert.Equal(t, domrequest.StatusRequested, store.requests[overdue.ID()].Status())
	assert.Equal(t, domrequest.StatusReserved, store.requests[reserved.ID()].Status())
}

func TestSeed(t *testing.T) {
	store := New()
	n, err := store.Seed(strings.NewReader(`[
		{"email": "Bakery@Example.com", "password": "password123", "role": "donor", "name": "Corner Bakery",
		 "latitude": 12.97, "longitude": 77.59, "city": "Bengaluru"},
		{"email": "shelter@example.com", "password": "password123", "role": "organization", "name": "Night Shelter"}
	]`), builder.FixedNow)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	users := NewUserReadStore(store)
	view, hash, err := users.FindByEmail(context.Background(), "bakery@example.com")
	require.NoError(t, err)
	assert.Equal(t, "donor", view.Role)
	assert.NotEqual(t, "password123", hash)

	contact, err := users.ContactByID(context.Background(), view.ID)
	require.NoError(t, err)
	require.NotNil(t, contact.Location)
	assert.Equal(t, "Bengaluru", contact.City)

	_, _, err = users.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, queries.ErrUserNotFound)

	_, err = store.Seed(strings.NewReader(`[{"email": "shelter@example.com", "password": "password123", "role": "organization", "name": "Dup"}]`), builder.FixedNow)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
