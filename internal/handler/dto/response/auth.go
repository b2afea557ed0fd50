package response

import (
	"time"

	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int64     `json:"expiresIn"`
	UserID      uuid.UUID `json:"userId"`
	Role        string    `json:"role"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	City      string     `json:"city,omitempty"`
	State     string     `json:"state,omitempty"`
	District  string     `json:"district,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func FromUserProfileView(v *queries.UserProfileView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		Role:      v.Role,
		Name:      v.Name,
		Phone:     v.Phone,
		City:      v.City,
		State:     v.State,
		District:  v.District,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		LastLogin: v.LastLogin,
	}
}
