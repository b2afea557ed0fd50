package memstore

import (
	"context"
	"slices"
	"time"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errs.New("write attempted in read-only unit of work")

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := newMemTx(u.store, false)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()

	return fn(ctx, newMemTx(u.store, true))
}

// memTx overlays staged writes on the committed maps. A nil entry in the
// donation or request map marks a deletion.
type memTx struct {
	store    *Store
	readOnly bool

	donations map[uuid.UUID]*donation.Donation
	requests  map[uuid.UUID]*domrequest.Request
	users     map[uuid.UUID]*user.User
}

func newMemTx(store *Store, readOnly bool) *memTx {
	return &memTx{
		store:     store,
		readOnly:  readOnly,
		donations: make(map[uuid.UUID]*donation.Donation),
		requests:  make(map[uuid.UUID]*domrequest.Request),
		users:     make(map[uuid.UUID]*user.User),
	}
}

func (t *memTx) commit() {
	for id, d := range t.donations {
		if d == nil {
			delete(t.store.donations, id)
			continue
		}
		t.store.donations[id] = d
	}
	for id, r := range t.requests {
		if r == nil {
			delete(t.store.requests, id)
			continue
		}
		t.store.requests[id] = r
	}
	for id, u := range t.users {
		t.store.users[id] = u
	}
}

func (t *memTx) Donations() shared.DonationRepository { return &donationRepo{tx: t} }
func (t *memTx) Requests() shared.RequestRepository   { return &requestRepo{tx: t} }
func (t *memTx) Users() shared.UserRepository         { return &userRepo{tx: t} }

func (t *memTx) donation(id uuid.UUID) (*donation.Donation, bool) {
	if d, staged := t.donations[id]; staged {
		return d, d != nil
	}
	d, ok := t.store.donations[id]
	return d, ok
}

func (t *memTx) request(id uuid.UUID) (*domrequest.Request, bool) {
	if r, staged := t.requests[id]; staged {
		return r, r != nil
	}
	r, ok := t.store.requests[id]
	return r, ok
}

// eachRequest visits the tx view of every request; staged versions win.
func (t *memTx) eachRequest(fn func(r *domrequest.Request)) {
	for id, r := range t.store.requests {
		if staged, ok := t.requests[id]; ok {
			r = staged
		}
		if r != nil {
			fn(r)
		}
	}
	for id, r := range t.requests {
		if _, ok := t.store.requests[id]; !ok && r != nil {
			fn(r)
		}
	}
}

func (t *memTx) eachDonation(fn func(d *donation.Donation)) {
	for id, d := range t.store.donations {
		if staged, ok := t.donations[id]; ok {
			d = staged
		}
		if d != nil {
			fn(d)
		}
	}
	for id, d := range t.donations {
		if _, ok := t.store.donations[id]; !ok && d != nil {
			fn(d)
		}
	}
}

type donationRepo struct {
	tx *memTx
}

func (r *donationRepo) Create(_ context.Context, d *donation.Donation) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	r.tx.donations[d.ID()] = d.Clone()
	return nil
}

func (r *donationRepo) FindByID(_ context.Context, id uuid.UUID) (*donation.Donation, error) {
	d, ok := r.tx.donation(id)
	if !ok {
		return nil, donation.ErrDonationNotFound
	}
	return d.Clone(), nil
}

// FindByIDForUpdate needs no row lock; the unit of work holds the store mutex.
func (r *donationRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	return r.FindByID(ctx, id)
}

func (r *donationRepo) Update(_ context.Context, d *donation.Donation, expected donation.Status) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	current, ok := r.tx.donation(d.ID())
	if !ok {
		return donation.ErrDonationNotFound
	}
	if current.Status() != expected {
		return donation.ErrConcurrentUpdate
	}
	r.tx.donations[d.ID()] = d.Clone()
	return nil
}

func (r *donationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	if _, ok := r.tx.donation(id); !ok {
		return donation.ErrDonationNotFound
	}
	r.tx.donations[id] = nil

	// mirrors ON DELETE CASCADE
	var cascade []uuid.UUID
	r.tx.eachRequest(func(req *domrequest.Request) {
		if req.DonationID() == id {
			cascade = append(cascade, req.ID())
		}
	})
	for _, reqID := range cascade {
		r.tx.requests[reqID] = nil
	}
	return nil
}

func (r *donationRepo) ExpireAvailable(_ context.Context, now time.Time) (int64, error) {
	if r.tx.readOnly {
		return 0, errReadOnly
	}
	var expired []*donation.Donation
	r.tx.eachDonation(func(d *donation.Donation) {
		if d.Status() == donation.StatusAvailable && d.IsExpiredAt(now) {
			expired = append(expired, d)
		}
	})
	for _, d := range expired {
		c := d.Clone()
		if err := c.Expire(now); err != nil {
			return 0, err
		}
		r.tx.donations[c.ID()] = c
	}
	return int64(len(expired)), nil
}

type requestRepo struct {
	tx *memTx
}

func (r *requestRepo) Create(ctx context.Context, req *domrequest.Request) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	existing, err := r.FindActive(ctx, req.DonationID(), req.RequesterID())
	if err != nil {
		return err
	}
	if existing != nil {
		return domrequest.ErrAlreadyRequested
	}
	r.tx.requests[req.ID()] = req.Clone()
	return nil
}

func (r *requestRepo) FindByID(_ context.Context, id uuid.UUID) (*domrequest.Request, error) {
	req, ok := r.tx.request(id)
	if !ok {
		return nil, domrequest.ErrRequestNotFound
	}
	return req.Clone(), nil
}

func (r *requestRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domrequest.Request, error) {
	return r.FindByID(ctx, id)
}

func (r *requestRepo) FindActive(_ context.Context, donationID, requesterID uuid.UUID) (*domrequest.Request, error) {
	var found *domrequest.Request
	r.tx.eachRequest(func(req *domrequest.Request) {
		if req.DonationID() == donationID && req.RequesterID() == requesterID && req.Status().IsActive() {
			found = req
		}
	})
	if found == nil {
		return nil, nil
	}
	return found.Clone(), nil
}

func (r *requestRepo) ListActiveByDonation(_ context.Context, donationID uuid.UUID) ([]*domrequest.Request, error) {
	var out []*domrequest.Request
	r.tx.eachRequest(func(req *domrequest.Request) {
		if req.DonationID() == donationID && req.Status().IsActive() {
			out = append(out, req.Clone())
		}
	})
	sortRequestsByCreation(out)
	return out, nil
}

func (r *requestRepo) Update(_ context.Context, req *domrequest.Request, expected domrequest.Status) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	current, ok := r.tx.request(req.ID())
	if !ok {
		return domrequest.ErrRequestNotFound
	}
	if current.Status() != expected {
		return domrequest.ErrRequestClosed
	}
	r.tx.requests[req.ID()] = req.Clone()
	return nil
}

func (r *requestRepo) ListOverdue(_ context.Context, now time.Time) ([]*domrequest.Request, error) {
	var overdue []*domrequest.Request
	r.tx.eachRequest(func(req *domrequest.Request) {
		if req.Status() == domrequest.StatusRequested && req.RequiredBefore().Before(now) {
			overdue = append(overdue, req.Clone())
		}
	})
	slices.SortFunc(overdue, func(a, b *domrequest.Request) int {
		return a.RequiredBefore().Compare(b.RequiredBefore())
	})
	return overdue, nil
}

type userRepo struct {
	tx *memTx
}

func (r *userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	u, ok := r.tx.users[userID]
	if !ok {
		u, ok = r.tx.store.users[userID]
	}
	if !ok {
		return queries.ErrUserNotFound
	}
	c := *u
	c.RecordLogin(at)
	r.tx.users[userID] = &c
	return nil
}
