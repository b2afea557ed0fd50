package user

import (
	"regexp"
	"strings"

	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Sentinel("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.Sentinel("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.Sentinel("password must be at least 8 characters long", errs.ErrValidation)
	ErrNameRequired    = errs.Sentinel("name is required", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Address struct {
	City     string
	State    string
	District string
}

// Profile is the contact and location data shown to the other party of a match.
type Profile struct {
	Name     string
	Phone    string
	Location *geo.Point
	Address  Address
}

func (p Profile) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.Location != nil {
		if _, err := geo.NewPoint(p.Location.Lat, p.Location.Lon); err != nil {
			return err
		}
	}
	return nil
}
