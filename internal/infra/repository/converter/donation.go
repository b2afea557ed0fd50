package converter

import (
	"foodshare-api/internal/domain/donation"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/pkg/pgconv"
	"foodshare-api/internal/usecase/queries"

	"github.com/google/uuid"
)

func ItemsToInfra(items []donation.Item) []query.Item {
	out := make([]query.Item, len(items))
	for i, it := range items {
		out[i] = query.Item{Name: it.Name(), Quantity: it.Quantity(), Unit: it.Unit()}
	}
	return out
}

func itemsToDomain(items []query.Item) []donation.Item {
	out := make([]donation.Item, len(items))
	for i, it := range items {
		out[i] = donation.ReconstructItem(it.Name, it.Quantity, it.Unit)
	}
	return out
}

func DonationToCreateParams(d *donation.Donation) query.CreateDonationParams {
	return query.CreateDonationParams{
		ID:          d.ID(),
		DonorID:     d.DonorID(),
		Items:       ItemsToInfra(d.Items()),
		MealType:    d.MealType().String(),
		Description: d.Description(),
		ExpiryTime:  pgconv.TimeToPgtype(d.ExpiryTime()),
		Status:      d.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func DonationToUpdateParams(d *donation.Donation, expected donation.Status) query.UpdateDonationParams {
	return query.UpdateDonationParams{
		ID:             d.ID(),
		ExpectedStatus: expected.String(),
		Items:          ItemsToInfra(d.Items()),
		MealType:       d.MealType().String(),
		Description:    d.Description(),
		ExpiryTime:     pgconv.TimeToPgtype(d.ExpiryTime()),
		Status:         d.Status().String(),
		RequestedBy:    d.RequestedBy(),
		AcceptedBy:     pgconv.UUIDPtrToPgtype(d.AcceptedBy()),
		UpdatedAt:      pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

// DonationToDomain trusts stored values; they were validated on write.
func DonationToDomain(row query.Donations) *donation.Donation {
	return donation.ReconstructDonation(
		row.ID,
		row.DonorID,
		itemsToDomain(row.Items),
		donation.MealType(row.MealType),
		row.Description,
		pgconv.TimeFromPgtype(row.ExpiryTime),
		donation.Status(row.Status),
		row.RequestedBy,
		pgconv.UUIDPtrFromPgtype(row.AcceptedBy),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func DonationToView(row query.Donations) *queries.DonationView {
	items := make([]queries.ItemView, len(row.Items))
	for i, it := range row.Items {
		items[i] = queries.ItemView{Name: it.Name, Quantity: it.Quantity, Unit: it.Unit}
	}
	requestedBy := row.RequestedBy
	if requestedBy == nil {
		requestedBy = []uuid.UUID{}
	}
	return &queries.DonationView{
		ID:          row.ID,
		DonorID:     row.DonorID,
		Items:       items,
		MealType:    row.MealType,
		Description: row.Description,
		ExpiryTime:  pgconv.TimeFromPgtype(row.ExpiryTime),
		Status:      row.Status,
		RequestedBy: requestedBy,
		AcceptedBy:  pgconv.UUIDPtrFromPgtype(row.AcceptedBy),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
