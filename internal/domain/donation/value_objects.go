package donation

import "strings"

const (
	MaxItemNameLength    = 120
	MaxDescriptionLength = 1000
	MaxItems             = 50
)

type Item struct {
	name     string
	quantity float64
	unit     string
}

func NewItem(name string, quantity float64, unit string) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxItemNameLength {
		return Item{}, ErrInvalidItemName
	}
	if !(quantity > 0) {
		return Item{}, ErrInvalidQuantity
	}
	return Item{name: name, quantity: quantity, unit: strings.TrimSpace(unit)}, nil
}

func ReconstructItem(name string, quantity float64, unit string) Item {
	return Item{name: name, quantity: quantity, unit: unit}
}

func (i Item) Name() string      { return i.name }
func (i Item) Quantity() float64 { return i.quantity }
func (i Item) Unit() string      { return i.unit }

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	if len(items) > MaxItems {
		return ErrTooManyItems
	}
	for _, it := range items {
		if it.name == "" {
			return ErrInvalidItemName
		}
		if !(it.quantity > 0) {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func normalizeDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return s, nil
}
