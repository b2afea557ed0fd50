package converter

import (
	domrequest "foodshare-api/internal/domain/request"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/pkg/pgconv"
)

func RequestToCreateParams(r *domrequest.Request) query.CreateRequestParams {
	return query.CreateRequestParams{
		ID:             r.ID(),
		DonationID:     r.DonationID(),
		RequesterID:    r.RequesterID(),
		RequiredBefore: pgconv.TimeToPgtype(r.RequiredBefore()),
		Status:         r.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RequestToUpdateParams(r *domrequest.Request, expected domrequest.Status) query.UpdateRequestParams {
	return query.UpdateRequestParams{
		ID:             r.ID(),
		ExpectedStatus: expected.String(),
		Status:         r.Status().String(),
		ApprovedAt:     pgconv.TimePtrToPgtype(r.ApprovedAt()),
		CompletedAt:    pgconv.TimePtrToPgtype(r.CompletedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RequestToDomain(row query.DonationRequests) *domrequest.Request {
	return domrequest.ReconstructRequest(
		row.ID,
		row.DonationID,
		row.RequesterID,
		pgconv.TimeFromPgtype(row.RequiredBefore),
		domrequest.Status(row.Status),
		pgconv.TimePtrFromPgtype(row.ApprovedAt),
		pgconv.TimePtrFromPgtype(row.CompletedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
