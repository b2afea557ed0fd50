//go:build unit

package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/infra/lease"
	"foodshare-api/internal/infra/memstore"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/config"
	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/usecase/shared"
	"foodshare-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpiry struct {
	donationsErr error
	donations    int64
	requests     int64
	requestCalls atomic.Int64
}

func (f *fakeExpiry) ExpireDonations(context.Context) (int64, error) {
	return f.donations, f.donationsErr
}

func (f *fakeExpiry) ExpireRequests(context.Context) (int64, error) {
	f.requestCalls.Add(1)
	return f.requests, nil
}

type heldLocker struct{}

func (heldLocker) TryAcquire(context.Context, string, time.Duration) (bool, error) { return false, nil }
func (heldLocker) Release(context.Context, string) error                          { return nil }

type brokenLocker struct{}

func (brokenLocker) TryAcquire(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis unreachable")
}
func (brokenLocker) Release(context.Context, string) error { return nil }

func TestSweeper_RunOnce_Boundary(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(builder.FixedNow)
	store := memstore.New()
	uow := memstore.NewUoW(store)

	hasty, patient := uuid.New(), uuid.New()
	available := builder.NewDonationBuilder().WithExpiryIn(time.Hour).BuildReconstructed()
	requested := builder.NewDonationBuilder().
		WithExpiryIn(time.Hour).
		WithStatus(donation.StatusRequested).
		WithRequestedBy(hasty, patient).
		BuildReconstructed()
	pending := builder.NewRequestBuilder().
		WithDonationID(requested.ID()).
		WithRequesterID(hasty).
		WithRequiredBefore(builder.FixedNow.Add(30 * time.Minute)).
		BuildReconstructed()
	waiting := builder.NewRequestBuilder().
		WithDonationID(requested.ID()).
		WithRequesterID(patient).
		WithRequiredBefore(builder.FixedNow.Add(24 * time.Hour)).
		BuildReconstructed()

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Donations().Create(ctx, available); err != nil {
			return err
		}
		if err := tx.Donations().Create(ctx, requested); err != nil {
			return err
		}
		if err := tx.Requests().Create(ctx, pending); err != nil {
			return err
		}
		return tx.Requests().Create(ctx, waiting)
	}))

	sweeper := NewSweeper(commands.NewExpiryCommands(uow, clk), lease.LocalLocker{}, config.NewTestConfig().Sweeper)

	t.Run("nothing is due yet", func(t *testing.T) {
		res := sweeper.RunOnce(ctx)
		assert.Equal(t, SweepResult{}, res)
	})

	t.Run("past expiry only available donations expire", func(t *testing.T) {
		clk.Add(2 * time.Hour)
		res := sweeper.RunOnce(ctx)

		assert.Equal(t, int64(1), res.ExpiredDonations)
		assert.Equal(t, int64(1), res.LapsedRequests)

		var gotAvailable, gotRequested *donation.Donation
		var gotRequest *domrequest.Request
		require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			if gotAvailable, err = tx.Donations().FindByID(ctx, available.ID()); err != nil {
				return err
			}
			if gotRequested, err = tx.Donations().FindByID(ctx, requested.ID()); err != nil {
				return err
			}
			gotRequest, err = tx.Requests().FindByID(ctx, pending.ID())
			return err
		}))
		assert.Equal(t, donation.StatusExpired, gotAvailable.Status())
		assert.Equal(t, donation.StatusRequested, gotRequested.Status())
		assert.Equal(t, []uuid.UUID{patient}, gotRequested.RequestedBy())
		assert.Equal(t, domrequest.StatusCancelled, gotRequest.Status())
	})

	t.Run("second sweep is a no-op", func(t *testing.T) {
		assert.Equal(t, SweepResult{}, sweeper.RunOnce(ctx))
	})
}

func TestSweeper_RunOnce_ClassesAreIndependent(t *testing.T) {
	expiry := &fakeExpiry{donationsErr: errors.New("db down"), requests: 2}
	sweeper := NewSweeper(expiry, lease.LocalLocker{}, config.SweeperConfig{Interval: time.Minute})

	res := sweeper.RunOnce(context.Background())

	assert.Equal(t, int64(1), expiry.requestCalls.Load())
	assert.Equal(t, int64(0), res.ExpiredDonations)
	assert.Equal(t, int64(2), res.LapsedRequests)
}

type countingLocker struct {
	acquired bool
	released atomic.Int64
}

func (l *countingLocker) TryAcquire(context.Context, string, time.Duration) (bool, error) {
	return l.acquired, nil
}

func (l *countingLocker) Release(_ context.Context, key string) error {
	if key == sweeperLeaseKey {
		l.released.Add(1)
	}
	return nil
}

func TestSweeper_RunOnce_Lease(t *testing.T) {
	t.Run("acquired lease is released after the sweep", func(t *testing.T) {
		locker := &countingLocker{acquired: true}
		expiry := &fakeExpiry{requests: 1}

		res := NewSweeper(expiry, locker, config.SweeperConfig{}).RunOnce(context.Background())

		assert.False(t, res.Skipped)
		assert.Equal(t, int64(1), expiry.requestCalls.Load())
		assert.Equal(t, int64(1), locker.released.Load())
	})

	t.Run("lease is not released when it was never taken", func(t *testing.T) {
		locker := &countingLocker{}

		res := NewSweeper(&fakeExpiry{}, locker, config.SweeperConfig{}).RunOnce(context.Background())

		assert.True(t, res.Skipped)
		assert.Zero(t, locker.released.Load())
	})

	t.Run("held elsewhere skips the tick", func(t *testing.T) {
		expiry := &fakeExpiry{}
		res := NewSweeper(expiry, heldLocker{}, config.SweeperConfig{}).RunOnce(context.Background())
		assert.True(t, res.Skipped)
		assert.Zero(t, expiry.requestCalls.Load())
	})

	t.Run("lease backend failure still sweeps", func(t *testing.T) {
		expiry := &fakeExpiry{requests: 1}
		res := NewSweeper(expiry, brokenLocker{}, config.SweeperConfig{}).RunOnce(context.Background())
		assert.False(t, res.Skipped)
		assert.Equal(t, int64(1), res.LapsedRequests)
	})
}

func TestSweeper_StartStop(t *testing.T) {
	expiry := &fakeExpiry{}
	sweeper := NewSweeper(expiry, lease.LocalLocker{}, config.SweeperConfig{Interval: 10 * time.Millisecond})
	sweeper.Start()

	require.Eventually(t, func() bool {
		return expiry.requestCalls.Load() > 0
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, sweeper.Stop(ctx))
}
