package shared

import (
	"context"

	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/domain/user"

	"github.com/google/uuid"
)

// Contact is what one side of a match learns about the other.
type Contact struct {
	ID       uuid.UUID
	Role     user.Role
	Name     string
	Email    string
	Phone    string
	City     string
	State    string
	District string
	Location *geo.Point
}

type UserDirectory interface {
	ContactByID(ctx context.Context, id uuid.UUID) (*Contact, error)
}
