package converter

import (
	"foodshare-api/internal/domain/geo"
	"foodshare-api/internal/domain/user"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/pkg/pgconv"
	"foodshare-api/internal/usecase/queries"
	"foodshare-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func UserToCreateParams(u *user.User) query.CreateUserParams {
	p := u.Profile()
	params := query.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Name:         p.Name,
		Phone:        p.Phone,
		City:         p.Address.City,
		State:        p.Address.State,
		District:     p.Address.District,
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
	if p.Location != nil {
		params.Latitude = pgtype.Float8{Float64: p.Location.Lat, Valid: true}
		params.Longitude = pgtype.Float8{Float64: p.Location.Lon, Valid: true}
	}
	return params
}

func UserToAuthorizedView(row query.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		Name:     row.Name,
		IsActive: row.IsActive,
	}
}

func UserToProfileView(row query.Users) *queries.UserProfileView {
	return &queries.UserProfileView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		Name:      row.Name,
		Phone:     row.Phone,
		City:      row.City,
		State:     row.State,
		District:  row.District,
		Latitude:  pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude: pgconv.Float64PtrFromPgtype(row.Longitude),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}

func UserToContact(row query.Users) *shared.Contact {
	return &shared.Contact{
		ID:       row.ID,
		Role:     user.Role(row.Role),
		Name:     row.Name,
		Email:    row.Email,
		Phone:    row.Phone,
		City:     row.City,
		State:    row.State,
		District: row.District,
		Location: geo.PointFrom(pgconv.Float64PtrFromPgtype(row.Latitude), pgconv.Float64PtrFromPgtype(row.Longitude)),
	}
}
