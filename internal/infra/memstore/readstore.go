package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type DonationReadStore struct {
	store *Store
}

func NewDonationReadStore(store *Store) *DonationReadStore {
	return &DonationReadStore{store: store}
}

func (s *DonationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.DonationView, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	d, ok := s.store.donations[id]
	if !ok {
		return nil, donation.ErrDonationNotFound
	}
	return toDonationView(d), nil
}

func (s *DonationReadStore) ListByDonor(_ context.Context, donorID uuid.UUID, filter queries.DonationListFilter) ([]*queries.DonationView, int, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	var matched []*donation.Donation
	for _, d := range s.store.donations {
		if d.DonorID() != donorID {
			continue
		}
		if filter.Statuses != nil && !slices.Contains(filter.Statuses, d.Status().String()) {
			continue
		}
		if search != "" && !hasItemLike(d, search) {
			continue
		}
		matched = append(matched, d)
	}
	sortDonationsNewestFirst(matched)

	page := window(matched, filter.Offset, filter.Limit)
	views := make([]*queries.DonationView, len(page))
	for i, d := range page {
		views[i] = toDonationView(d)
	}
	return views, len(matched), nil
}

func (s *DonationReadStore) ListCandidates(_ context.Context, filter queries.CandidateFilter) ([]*queries.DonationCandidate, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var matched []*donation.Donation
	for _, d := range s.store.donations {
		if !slices.Contains(filter.Statuses, d.Status().String()) {
			continue
		}
		if !d.ExpiryTime().After(filter.ExpiresAfter) {
			continue
		}
		if filter.ExpiresNotBefore != nil && d.ExpiryTime().Before(*filter.ExpiresNotBefore) {
			continue
		}
		if filter.MealType != nil && d.MealType().String() != *filter.MealType {
			continue
		}
		if _, ok := s.store.users[d.DonorID()]; !ok {
			continue
		}
		matched = append(matched, d)
	}
	sortDonationsNewestFirst(matched)

	out := make([]*queries.DonationCandidate, len(matched))
	for i, d := range matched {
		donor := s.store.users[d.DonorID()]
		out[i] = &queries.DonationCandidate{
			Donation:      *toDonationView(d),
			DonorName:     donor.Profile().Name,
			DonorCity:     donor.Profile().Address.City,
			DonorLocation: donor.Profile().Location,
		}
	}
	return out, nil
}

func (s *DonationReadStore) ListRequestsForDonation(_ context.Context, donationID uuid.UUID) ([]*queries.DonationRequestView, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var reqs []*domrequest.Request
	for _, r := range s.store.requests {
		if r.DonationID() == donationID {
			reqs = append(reqs, r)
		}
	}
	sortRequestsByCreation(reqs)

	out := make([]*queries.DonationRequestView, 0, len(reqs))
	for _, r := range reqs {
		org, ok := s.store.users[r.RequesterID()]
		if !ok {
			continue
		}
		out = append(out, &queries.DonationRequestView{
			RequestID:        r.ID(),
			OrganizationID:   r.RequesterID(),
			OrganizationName: org.Profile().Name,
			City:             org.Profile().Address.City,
			Status:           r.Status().String(),
			RequiredBefore:   r.RequiredBefore(),
			CreatedAt:        r.CreatedAt(),
		})
	}
	return out, nil
}

type RequestReadStore struct {
	store *Store
}

func NewRequestReadStore(store *Store) *RequestReadStore {
	return &RequestReadStore{store: store}
}

func (s *RequestReadStore) ListByRequester(_ context.Context, requesterID uuid.UUID, statuses []string, offset, limit int) ([]*queries.ActivityItem, int, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var matched []*domrequest.Request
	for _, r := range s.store.requests {
		if r.RequesterID() != requesterID {
			continue
		}
		if statuses != nil && !slices.Contains(statuses, r.Status().String()) {
			continue
		}
		if _, ok := s.store.donations[r.DonationID()]; !ok {
			continue
		}
		matched = append(matched, r)
	}
	slices.SortStableFunc(matched, func(a, b *domrequest.Request) int {
		return cmp.Or(
			b.CreatedAt().Compare(a.CreatedAt()),
			strings.Compare(b.ID().String(), a.ID().String()),
		)
	})

	page := window(matched, offset, limit)
	items := make([]*queries.ActivityItem, len(page))
	for i, r := range page {
		d := s.store.donations[r.DonationID()]
		item := &queries.ActivityItem{
			RequestID:      r.ID(),
			Status:         r.Status().String(),
			RequiredBefore: r.RequiredBefore(),
			ApprovedAt:     r.ApprovedAt(),
			CompletedAt:    r.CompletedAt(),
			CreatedAt:      r.CreatedAt(),
			Donation:       *toDonationView(d),
		}
		if donor, ok := s.store.users[d.DonorID()]; ok {
			p := donor.Profile()
			item.DonorContact = &queries.ContactView{
				Name:  p.Name,
				Email: donor.Email().Value(),
				Phone: p.Phone,
				City:  p.Address.City,
			}
		}
		items[i] = item
	}
	return items, len(matched), nil
}

// UserReadStore also serves as the shared.UserDirectory for the memory driver.
type UserReadStore struct {
	store *Store
}

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (s *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	u, err := s.user(id)
	if err != nil {
		return nil, err
	}
	return toAuthorizedView(u), nil
}

func (s *UserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	for _, u := range s.store.users {
		if u.Email().Value() == email {
			return toAuthorizedView(u), u.PasswordHash(), nil
		}
	}
	return nil, "", queries.ErrUserNotFound
}

func (s *UserReadStore) FindProfile(_ context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	u, err := s.user(id)
	if err != nil {
		return nil, err
	}
	p := u.Profile()
	view := &queries.UserProfileView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		Name:      p.Name,
		Phone:     p.Phone,
		City:      p.Address.City,
		State:     p.Address.State,
		District:  p.Address.District,
		IsActive:  u.IsActive(),
		LastLogin: u.LastLogin(),
	}
	if p.Location != nil {
		lat, lon := p.Location.Lat, p.Location.Lon
		view.Latitude, view.Longitude = &lat, &lon
	}
	return view, nil
}

func (s *UserReadStore) ContactByID(_ context.Context, id uuid.UUID) (*shared.Contact, error) {
	u, err := s.user(id)
	if err != nil {
		return nil, err
	}
	p := u.Profile()
	return &shared.Contact{
		ID:       u.ID(),
		Role:     u.Role(),
		Name:     p.Name,
		Email:    u.Email().Value(),
		Phone:    p.Phone,
		City:     p.Address.City,
		State:    p.Address.State,
		District: p.Address.District,
		Location: p.Location,
	}, nil
}

func (s *UserReadStore) user(id uuid.UUID) (*user.User, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	u, ok := s.store.users[id]
	if !ok {
		return nil, queries.ErrUserNotFound
	}
	return u, nil
}

func toDonationView(d *donation.Donation) *queries.DonationView {
	items := make([]queries.ItemView, 0, len(d.Items()))
	for _, it := range d.Items() {
		items = append(items, queries.ItemView{Name: it.Name(), Quantity: it.Quantity(), Unit: it.Unit()})
	}
	return &queries.DonationView{
		ID:          d.ID(),
		DonorID:     d.DonorID(),
		Items:       items,
		MealType:    d.MealType().String(),
		Description: d.Description(),
		ExpiryTime:  d.ExpiryTime(),
		Status:      d.Status().String(),
		RequestedBy: d.RequestedBy(),
		AcceptedBy:  d.AcceptedBy(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func toAuthorizedView(u *user.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID(),
		Email:    u.Email().Value(),
		Role:     u.Role().String(),
		Name:     u.Profile().Name,
		IsActive: u.IsActive(),
	}
}

func hasItemLike(d *donation.Donation, needle string) bool {
	for _, it := range d.Items() {
		if strings.Contains(strings.ToLower(it.Name()), needle) {
			return true
		}
	}
	return false
}

func sortDonationsNewestFirst(ds []*donation.Donation) {
	slices.SortStableFunc(ds, func(a, b *donation.Donation) int {
		return cmp.Or(
			b.CreatedAt().Compare(a.CreatedAt()),
			strings.Compare(b.ID().String(), a.ID().String()),
		)
	})
}

func sortRequestsByCreation(rs []*domrequest.Request) {
	slices.SortStableFunc(rs, func(a, b *domrequest.Request) int {
		return cmp.Or(
			a.CreatedAt().Compare(b.CreatedAt()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	return items[offset:min(offset+limit, len(items))]
}
