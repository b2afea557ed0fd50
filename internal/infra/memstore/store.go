// Package memstore is the in-memory store driver. Writers are serialized by a
// single mutex and stage their changes until the unit of work commits.
package memstore

import (
	"sync"

	"foodshare-api/internal/domain/donation"
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errs.Sentinel("email already registered", errs.ErrValidation)

type Store struct {
	mu        sync.RWMutex
	donations map[uuid.UUID]*donation.Donation
	requests  map[uuid.UUID]*domrequest.Request
	users     map[uuid.UUID]*user.User
}

func New() *Store {
	return &Store{
		donations: make(map[uuid.UUID]*donation.Donation),
		requests:  make(map[uuid.UUID]*domrequest.Request),
		users:     make(map[uuid.UUID]*user.User),
	}
}

// AddUser registers an account outside of any unit of work.
func (s *Store) AddUser(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email() == u.Email() {
			return ErrDuplicateEmail
		}
	}
	s.users[u.ID()] = u
	return nil
}
