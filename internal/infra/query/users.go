package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, role, name, phone, latitude, longitude,
	city, state, district, is_active, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (Users, error) {
	var u Users
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.Phone, &u.Latitude, &u.Longitude,
		&u.City, &u.State, &u.District, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

type UpdateUserLastLoginParams struct {
	ID        uuid.UUID
	LastLogin pgtype.Timestamptz
}

const updateUserLastLogin = `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, arg UpdateUserLastLoginParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserLastLogin, arg.ID, arg.LastLogin)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Name         string
	Phone        string
	Latitude     pgtype.Float8
	Longitude    pgtype.Float8
	City         string
	State        string
	District     string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const createUser = `
INSERT INTO users (id, email, password_hash, role, name, phone, latitude, longitude,
                   city, state, district, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser,
		arg.ID, arg.Email, arg.PasswordHash, arg.Role, arg.Name, arg.Phone, arg.Latitude, arg.Longitude,
		arg.City, arg.State, arg.District, arg.IsActive, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}
