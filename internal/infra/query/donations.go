package query

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const donationColumns = `d.id, d.donor_id, d.items, d.meal_type, d.description, d.expiry_time,
	d.status, d.requested_by, d.accepted_by, d.created_at, d.updated_at`

func scanDonation(row pgx.Row, extra ...any) (Donations, error) {
	var d Donations
	dest := append([]any{
		&d.ID, &d.DonorID, &d.Items, &d.MealType, &d.Description, &d.ExpiryTime,
		&d.Status, &d.RequestedBy, &d.AcceptedBy, &d.CreatedAt, &d.UpdatedAt,
	}, extra...)
	err := row.Scan(dest...)
	return d, err
}

type CreateDonationParams struct {
	ID          uuid.UUID
	DonorID     uuid.UUID
	Items       []Item
	MealType    string
	Description string
	ExpiryTime  pgtype.Timestamptz
	Status      string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const createDonation = `
INSERT INTO donations (id, donor_id, items, meal_type, description, expiry_time, status, requested_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, '{}', $8, $9)`

func (q *Queries) CreateDonation(ctx context.Context, db DBTX, arg CreateDonationParams) error {
	_, err := db.Exec(ctx, createDonation,
		arg.ID, arg.DonorID, arg.Items, arg.MealType, arg.Description, arg.ExpiryTime,
		arg.Status, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getDonation = `SELECT ` + donationColumns + ` FROM donations d WHERE d.id = $1`

func (q *Queries) GetDonation(ctx context.Context, db DBTX, id uuid.UUID) (Donations, error) {
	return scanDonation(db.QueryRow(ctx, getDonation, id))
}

const getDonationForUpdate = getDonation + ` FOR UPDATE`

func (q *Queries) GetDonationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Donations, error) {
	return scanDonation(db.QueryRow(ctx, getDonationForUpdate, id))
}

type UpdateDonationParams struct {
	ID             uuid.UUID
	ExpectedStatus string
	Items          []Item
	MealType       string
	Description    string
	ExpiryTime     pgtype.Timestamptz
	Status         string
	RequestedBy    []uuid.UUID
	AcceptedBy     pgtype.UUID
	UpdatedAt      pgtype.Timestamptz
}

const updateDonationIfStatus = `
UPDATE donations
SET items = $3, meal_type = $4, description = $5, expiry_time = $6,
    status = $7, requested_by = $8, accepted_by = $9, updated_at = $10
WHERE id = $1 AND status = $2`

// UpdateDonationIfStatus reports the number of rows written; zero means the
// stored status no longer matched.
func (q *Queries) UpdateDonationIfStatus(ctx context.Context, db DBTX, arg UpdateDonationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateDonationIfStatus,
		arg.ID, arg.ExpectedStatus, arg.Items, arg.MealType, arg.Description, arg.ExpiryTime,
		arg.Status, arg.RequestedBy, arg.AcceptedBy, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteDonation = `DELETE FROM donations WHERE id = $1`

func (q *Queries) DeleteDonation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteDonation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const expireAvailableDonations = `
UPDATE donations
SET status = 'expired', updated_at = $1
WHERE status = 'available' AND expiry_time < $1`

func (q *Queries) ExpireAvailableDonations(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, expireAvailableDonations, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListDonationsByDonorParams struct {
	DonorID  uuid.UUID
	Statuses []string
	Search   pgtype.Text
	Offset   int32
	Limit    int32
}

const donorFilter = `
WHERE d.donor_id = $1
  AND ($2::text[] IS NULL OR d.status = ANY($2))
  AND ($3::text IS NULL OR EXISTS (
        SELECT 1 FROM jsonb_array_elements(d.items) AS it
        WHERE it->>'name' ILIKE '%' || $3 || '%' ESCAPE '\'))`

const listDonationsByDonor = `SELECT ` + donationColumns + ` FROM donations d` + donorFilter + `
ORDER BY d.created_at DESC, d.id DESC
OFFSET $4 LIMIT $5`

func (q *Queries) ListDonationsByDonor(ctx context.Context, db DBTX, arg ListDonationsByDonorParams) ([]Donations, error) {
	rows, err := db.Query(ctx, listDonationsByDonor, arg.DonorID, arg.Statuses, arg.Search, arg.Offset, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Donations
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

const countDonationsByDonor = `SELECT count(*) FROM donations d` + donorFilter

func (q *Queries) CountDonationsByDonor(ctx context.Context, db DBTX, arg ListDonationsByDonorParams) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countDonationsByDonor, arg.DonorID, arg.Statuses, arg.Search).Scan(&n)
	return n, err
}

type ListCandidateDonationsParams struct {
	Statuses         []string
	ExpiresAfter     pgtype.Timestamptz
	ExpiresNotBefore pgtype.Timestamptz
	MealType         pgtype.Text
}

type ListCandidateDonationsRow struct {
	Donations
	DonorName      string
	DonorCity      string
	DonorLatitude  pgtype.Float8
	DonorLongitude pgtype.Float8
}

const listCandidateDonations = `
SELECT ` + donationColumns + `, u.name, u.city, u.latitude, u.longitude
FROM donations d
JOIN users u ON u.id = d.donor_id
WHERE d.status = ANY($1)
  AND d.expiry_time > $2
  AND ($3::timestamptz IS NULL OR d.expiry_time >= $3)
  AND ($4::text IS NULL OR d.meal_type = $4)
ORDER BY d.created_at DESC, d.id DESC`

func (q *Queries) ListCandidateDonations(ctx context.Context, db DBTX, arg ListCandidateDonationsParams) ([]ListCandidateDonationsRow, error) {
	rows, err := db.Query(ctx, listCandidateDonations, arg.Statuses, arg.ExpiresAfter, arg.ExpiresNotBefore, arg.MealType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListCandidateDonationsRow
	for rows.Next() {
		var r ListCandidateDonationsRow
		d, err := scanDonation(rows, &r.DonorName, &r.DonorCity, &r.DonorLatitude, &r.DonorLongitude)
		if err != nil {
			return nil, err
		}
		r.Donations = d
		items = append(items, r)
	}
	return items, rows.Err()
}

// EscapeLike escapes the ILIKE wildcards in user input.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
