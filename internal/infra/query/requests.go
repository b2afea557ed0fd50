package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const requestColumns = `r.id, r.donation_id, r.requester_id, r.required_before, r.status,
	r.approved_at, r.completed_at, r.created_at, r.updated_at`

func scanRequest(row pgx.Row) (DonationRequests, error) {
	var r DonationRequests
	err := row.Scan(
		&r.ID, &r.DonationID, &r.RequesterID, &r.RequiredBefore, &r.Status,
		&r.ApprovedAt, &r.CompletedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func collectRequests(rows pgx.Rows) ([]DonationRequests, error) {
	defer rows.Close()
	var items []DonationRequests
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type CreateRequestParams struct {
	ID             uuid.UUID
	DonationID     uuid.UUID
	RequesterID    uuid.UUID
	RequiredBefore pgtype.Timestamptz
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

const createRequest = `
INSERT INTO donation_requests (id, donation_id, requester_id, required_before, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) CreateRequest(ctx context.Context, db DBTX, arg CreateRequestParams) error {
	_, err := db.Exec(ctx, createRequest,
		arg.ID, arg.DonationID, arg.RequesterID, arg.RequiredBefore, arg.Status, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getRequest = `SELECT ` + requestColumns + ` FROM donation_requests r WHERE r.id = $1`

func (q *Queries) GetRequest(ctx context.Context, db DBTX, id uuid.UUID) (DonationRequests, error) {
	return scanRequest(db.QueryRow(ctx, getRequest, id))
}

const getRequestForUpdate = getRequest + ` FOR UPDATE`

func (q *Queries) GetRequestForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (DonationRequests, error) {
	return scanRequest(db.QueryRow(ctx, getRequestForUpdate, id))
}

const getActiveRequestForPair = `
SELECT ` + requestColumns + `
FROM donation_requests r
WHERE r.donation_id = $1 AND r.requester_id = $2 AND r.status IN ('requested', 'reserved')
LIMIT 1`

func (q *Queries) GetActiveRequestForPair(ctx context.Context, db DBTX, donationID, requesterID uuid.UUID) (DonationRequests, error) {
	return scanRequest(db.QueryRow(ctx, getActiveRequestForPair, donationID, requesterID))
}

const listActiveRequestsByDonation = `
SELECT ` + requestColumns + `
FROM donation_requests r
WHERE r.donation_id = $1 AND r.status IN ('requested', 'reserved')
ORDER BY r.created_at, r.id
FOR UPDATE`

// ListActiveRequestsByDonation locks every returned row.
func (q *Queries) ListActiveRequestsByDonation(ctx context.Context, db DBTX, donationID uuid.UUID) ([]DonationRequests, error) {
	rows, err := db.Query(ctx, listActiveRequestsByDonation, donationID)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

type UpdateRequestParams struct {
	ID             uuid.UUID
	ExpectedStatus string
	Status         string
	ApprovedAt     pgtype.Timestamptz
	CompletedAt    pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

const updateRequestIfStatus = `
UPDATE donation_requests
SET status = $3, approved_at = $4, completed_at = $5, updated_at = $6
WHERE id = $1 AND status = $2`

func (q *Queries) UpdateRequestIfStatus(ctx context.Context, db DBTX, arg UpdateRequestParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRequestIfStatus,
		arg.ID, arg.ExpectedStatus, arg.Status, arg.ApprovedAt, arg.CompletedAt, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listOverdueRequests = `
SELECT ` + requestColumns + `
FROM donation_requests r
WHERE r.status = 'requested' AND r.required_before < $1
ORDER BY r.required_before, r.id`

func (q *Queries) ListOverdueRequests(ctx context.Context, db DBTX, now pgtype.Timestamptz) ([]DonationRequests, error) {
	rows, err := db.Query(ctx, listOverdueRequests, now)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

type ListRequestsForDonationRow struct {
	RequestID      uuid.UUID
	RequesterID    uuid.UUID
	RequesterName  string
	RequesterCity  string
	Status         string
	RequiredBefore pgtype.Timestamptz
	CreatedAt      pgtype.Timestamptz
}

const listRequestsForDonation = `
SELECT r.id, r.requester_id, u.name, u.city, r.status, r.required_before, r.created_at
FROM donation_requests r
JOIN users u ON u.id = r.requester_id
WHERE r.donation_id = $1
ORDER BY r.created_at, r.id`

func (q *Queries) ListRequestsForDonation(ctx context.Context, db DBTX, donationID uuid.UUID) ([]ListRequestsForDonationRow, error) {
	rows, err := db.Query(ctx, listRequestsForDonation, donationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListRequestsForDonationRow
	for rows.Next() {
		var r ListRequestsForDonationRow
		if err := rows.Scan(&r.RequestID, &r.RequesterID, &r.RequesterName, &r.RequesterCity,
			&r.Status, &r.RequiredBefore, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

type ListRequestsByRequesterParams struct {
	RequesterID uuid.UUID
	Statuses    []string
	Offset      int32
	Limit       int32
}

type ListRequestsByRequesterRow struct {
	Request     DonationRequests
	Donation    Donations
	DonorName   string
	DonorEmail  string
	DonorPhone  string
	DonorCity   string
}

const requesterFilter = `
WHERE r.requester_id = $1
  AND ($2::text[] IS NULL OR r.status = ANY($2))`

const listRequestsByRequester = `
SELECT ` + requestColumns + `, ` + donationColumns + `, u.name, u.email, u.phone, u.city
FROM donation_requests r
JOIN donations d ON d.id = r.donation_id
JOIN users u ON u.id = d.donor_id` + requesterFilter + `
ORDER BY r.created_at DESC, r.id DESC
OFFSET $3 LIMIT $4`

func (q *Queries) ListRequestsByRequester(ctx context.Context, db DBTX, arg ListRequestsByRequesterParams) ([]ListRequestsByRequesterRow, error) {
	rows, err := db.Query(ctx, listRequestsByRequester, arg.RequesterID, arg.Statuses, arg.Offset, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListRequestsByRequesterRow
	for rows.Next() {
		var row ListRequestsByRequesterRow
		r, d := &row.Request, &row.Donation
		if err := rows.Scan(
			&r.ID, &r.DonationID, &r.RequesterID, &r.RequiredBefore, &r.Status,
			&r.ApprovedAt, &r.CompletedAt, &r.CreatedAt, &r.UpdatedAt,
			&d.ID, &d.DonorID, &d.Items, &d.MealType, &d.Description, &d.ExpiryTime,
			&d.Status, &d.RequestedBy, &d.AcceptedBy, &d.CreatedAt, &d.UpdatedAt,
			&row.DonorName, &row.DonorEmail, &row.DonorPhone, &row.DonorCity,
		); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

const countRequestsByRequester = `SELECT count(*) FROM donation_requests r` + requesterFilter

func (q *Queries) CountRequestsByRequester(ctx context.Context, db DBTX, arg ListRequestsByRequesterParams) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countRequestsByRequester, arg.RequesterID, arg.Statuses).Scan(&n)
	return n, err
}
