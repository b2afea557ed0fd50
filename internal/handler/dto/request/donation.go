package request

import (
	"time"

	"foodshare-api/internal/usecase/commands"
	"foodshare-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ItemRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"max=30"`
}

type CreateDonationRequest struct {
	Items       []ItemRequest `json:"items" binding:"required,min=1,max=50,dive"`
	MealType    string        `json:"mealType" binding:"required,oneof=breakfast lunch dinner snacks fruits other"`
	ExpiryTime  time.Time     `json:"expiryTime" binding:"required"`
	Description string        `json:"description" binding:"max=1000"`
}

func (r CreateDonationRequest) ToInput() (commands.CreateDonationInput, error) {
	items, err := toItemInputs(r.Items)
	if err != nil {
		return commands.CreateDonationInput{}, err
	}
	return commands.CreateDonationInput{
		Items:       items,
		MealType:    r.MealType,
		ExpiryTime:  r.ExpiryTime,
		Description: r.Description,
	}, nil
}

// UpdateDonationRequest is a patch; omitted fields keep their stored value.
type UpdateDonationRequest struct {
	Items       *[]ItemRequest `json:"items" binding:"omitempty,min=1,max=50,dive"`
	MealType    *string        `json:"mealType" binding:"omitempty,oneof=breakfast lunch dinner snacks fruits other"`
	ExpiryTime  *time.Time     `json:"expiryTime"`
	Description *string        `json:"description" binding:"omitempty,max=1000"`
}

func (r UpdateDonationRequest) ToInput() (commands.UpdateDonationInput, error) {
	in := commands.UpdateDonationInput{
		MealType:    r.MealType,
		ExpiryTime:  r.ExpiryTime,
		Description: r.Description,
	}
	if r.Items != nil {
		items, err := toItemInputs(*r.Items)
		if err != nil {
			return commands.UpdateDonationInput{}, err
		}
		in.Items = &items
	}
	return in, nil
}

type ListDonationsQuery struct {
	Tab    string `form:"tab" binding:"omitempty,oneof=ongoing completed expired"`
	Search string `form:"search" binding:"max=100"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

func (q ListDonationsQuery) ToFilter() queries.ListDonationsFilter {
	return queries.ListDonationsFilter{
		Tab:        q.Tab,
		Search:     q.Search,
		Pagination: queries.Pagination{Page: q.Page, Limit: q.Limit},
	}
}

func toItemInputs(items []ItemRequest) ([]commands.ItemInput, error) {
	out := make([]commands.ItemInput, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		return nil, err
	}
	return out, nil
}
