//go:build unit || e2e

package builder

import (
	"time"

	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	Name         string
	Phone        string
	City         string
	Location     *geo.Point
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "donor@example.com",
		PasswordHash: "hashed_password",
		Role:         "donor",
		Name:         "Test Donor",
		IsActive:     true,
		Now:          FixedNow,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	built, err := user.NewUser(email, u.PasswordHash, role, u.profile(), u.Now)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		built.Deactivate(u.Now)
	}
	return built, nil
}

func (u *UserBuilder) MustBuildDomain() *user.User {
	built, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

func (u *UserBuilder) BuildInfra() query.Users {
	row := query.Users{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Name:         u.Name,
		Phone:        u.Phone,
		City:         u.City,
		LastLogin:    pgtype.Timestamptz{},
		IsActive:     u.IsActive,
		CreatedAt:    pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
	if u.Location != nil {
		row.Latitude = pgtype.Float8{Float64: u.Location.Lat, Valid: true}
		row.Longitude = pgtype.Float8{Float64: u.Location.Lon, Valid: true}
	}
	return row
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		Role:     u.Role,
		Name:     u.Name,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) profile() user.Profile {
	return user.Profile{
		Name:     u.Name,
		Phone:    u.Phone,
		Location: u.Location,
		Address:  user.Address{City: u.City},
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithLocation(lat, lon float64) *UserBuilder {
	u.Location = &geo.Point{Lat: lat, Lon: lon}
	return u
}

func (u *UserBuilder) WithoutLocation() *UserBuilder {
	u.Location = nil
	return u
}

func (u *UserBuilder) WithCity(city string) *UserBuilder {
	u.City = city
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
