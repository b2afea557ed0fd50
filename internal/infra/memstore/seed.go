package memstore

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/pkg/password"
)

// SeedUser is one account in a seed file. Passwords are given in clear text
// and hashed on load.
type SeedUser struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	District  string   `json:"district"`
}

func (s SeedUser) toDomain(now time.Time) (*user.User, error) {
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(s.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(s.Role)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash seed password")
	}
	return user.NewUser(email, hash, role, user.Profile{
		Name:     s.Name,
		Phone:    s.Phone,
		Location: geo.PointFrom(s.Latitude, s.Longitude),
		Address: user.Address{
			City:     s.City,
			State:    s.State,
			District: s.District,
		},
	}, now)
}

func (s *Store) Seed(r io.Reader, now time.Time) (int, error) {
	var seeds []SeedUser
	if err := json.NewDecoder(r).Decode(&seeds); err != nil {
		return 0, errs.Wrap(err, "decode seed users")
	}
	for i, seed := range seeds {
		u, err := seed.toDomain(now)
		if err != nil {
			return i, errs.Wrapf(err, "seed user %q", seed.Email)
		}
		if err := s.AddUser(u); err != nil {
			return i, errs.Wrapf(err, "seed user %q", seed.Email)
		}
	}
	return len(seeds), nil
}

func (s *Store) SeedFile(path string, now time.Time) (int, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return 0, errs.Wrap(err, "open seed file")
	}
	defer f.Close()
	return s.Seed(f, now)
}
