//go:build unit || e2e

package builder

import (
	"time"

	"foodshare-api/internal/domain/donation"
	reqdto "foodshare-api/internal/handler/dto/request"
	"foodshare-api/internal/infra/query"
	"foodshare-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemSpec struct {
	Name     string
	Quantity float64
	Unit     string
}

type DonationBuilder struct {
	ID          uuid.UUID
	DonorID     uuid.UUID
	Items       []ItemSpec
	MealType    string
	Description string
	ExpiryTime  time.Time
	Status      donation.Status
	RequestedBy []uuid.UUID
	AcceptedBy  *uuid.UUID
	Now         time.Time
}

func NewDonationBuilder() *DonationBuilder {
	return &DonationBuilder{
		ID:          uuid.New(),
		DonorID:     uuid.New(),
		Items:       []ItemSpec{{Name: "bread", Quantity: 5, Unit: "units"}},
		MealType:    "lunch",
		Description: "",
		ExpiryTime:  FixedNow.Add(4 * time.Hour),
		Status:      donation.StatusAvailable,
		Now:         FixedNow,
	}
}

func (b *DonationBuilder) With(mutate func(*DonationBuilder)) *DonationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *DonationBuilder) BuildDomain() (*donation.Donation, error) {
	items := make([]donation.Item, 0, len(b.Items))
	for _, item := range b.Items {
		it, err := donation.NewItem(item.Name, item.Quantity, item.Unit)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	mealType, err := donation.ParseMealType(b.MealType)
	if err != nil {
		return nil, err
	}
	return donation.NewDonation(b.DonorID, items, mealType, b.ExpiryTime, b.Description, b.Now)
}

func (b *DonationBuilder) MustBuildDomain() *donation.Donation {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

// BuildReconstructed bypasses creation rules so tests can start from any status.
func (b *DonationBuilder) BuildReconstructed() *donation.Donation {
	items := make([]donation.Item, len(b.Items))
	for i, item := range b.Items {
		items[i] = donation.ReconstructItem(item.Name, item.Quantity, item.Unit)
	}
	return donation.ReconstructDonation(
		b.ID, b.DonorID, items, donation.MealType(b.MealType), b.Description,
		b.ExpiryTime, b.Status, b.RequestedBy, b.AcceptedBy, b.Now, b.Now,
	)
}

func (b *DonationBuilder) BuildInfra() query.Donations {
	items := make([]query.Item, len(b.Items))
	for i, item := range b.Items {
		items[i] = query.Item{Name: item.Name, Quantity: item.Quantity, Unit: item.Unit}
	}
	requestedBy := b.RequestedBy
	if requestedBy == nil {
		requestedBy = []uuid.UUID{}
	}
	return query.Donations{
		ID:          b.ID,
		DonorID:     b.DonorID,
		Items:       items,
		MealType:    b.MealType,
		Description: b.Description,
		ExpiryTime:  pgconv.TimeToPgtype(b.ExpiryTime),
		Status:      b.Status.String(),
		RequestedBy: requestedBy,
		AcceptedBy:  pgconv.UUIDPtrToPgtype(b.AcceptedBy),
		CreatedAt:   pgconv.TimeToPgtype(b.Now),
		UpdatedAt:   pgconv.TimeToPgtype(b.Now),
	}
}

func (b *DonationBuilder) BuildCreateDTO() reqdto.CreateDonationRequest {
	items := make([]reqdto.ItemRequest, len(b.Items))
	for i, item := range b.Items {
		items[i] = reqdto.ItemRequest{Name: item.Name, Quantity: item.Quantity, Unit: item.Unit}
	}
	return reqdto.CreateDonationRequest{
		Items:       items,
		MealType:    b.MealType,
		ExpiryTime:  b.ExpiryTime,
		Description: b.Description,
	}
}

// Fluent builder methods
func (b *DonationBuilder) WithDonorID(id uuid.UUID) *DonationBuilder {
	b.DonorID = id
	return b
}

func (b *DonationBuilder) WithoutItems() *DonationBuilder {
	b.Items = nil
	return b
}

// WithItem appends to the default items.
func (b *DonationBuilder) WithItem(name string, quantity float64, unit string) *DonationBuilder {
	b.Items = append(b.Items, ItemSpec{Name: name, Quantity: quantity, Unit: unit})
	return b
}

func (b *DonationBuilder) WithItems(items ...ItemSpec) *DonationBuilder {
	b.Items = items
	return b
}

func (b *DonationBuilder) WithMealType(mealType string) *DonationBuilder {
	b.MealType = mealType
	return b
}

func (b *DonationBuilder) WithExpiryIn(d time.Duration) *DonationBuilder {
	b.ExpiryTime = b.Now.Add(d)
	return b
}

func (b *DonationBuilder) WithStatus(status donation.Status) *DonationBuilder {
	b.Status = status
	return b
}

func (b *DonationBuilder) WithRequestedBy(ids ...uuid.UUID) *DonationBuilder {
	b.RequestedBy = ids
	return b
}

func (b *DonationBuilder) WithAcceptedBy(id uuid.UUID) *DonationBuilder {
	b.AcceptedBy = &id
	return b
}

func (b *DonationBuilder) WithNow(now time.Time) *DonationBuilder {
	b.Now = now
	return b
}
