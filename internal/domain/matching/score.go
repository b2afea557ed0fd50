package matching

import (
	"strings"
	"time"
)

const (
	nameMatchPoints = 2.0

	fullQuantityBonus    = 2.0
	mostQuantityBonus    = 1.5
	partialQuantityBonus = 1.0
	minimalQuantityBonus = 0.5

	urgentBonus = 2.0
	soonBonus   = 1.0
)

type Item struct {
	Name     string
	Quantity float64
}

// Score sums a name and quantity bonus over every (requested, donated) pair whose
// lower-cased names contain one another, then adds an urgency bonus for the expiry.
func Score(donationItems, requestedItems []Item, expiry, now time.Time) float64 {
	total := 0.0
	for _, req := range requestedItems {
		reqName := strings.ToLower(req.Name)
		for _, don := range donationItems {
			donName := strings.ToLower(don.Name)
			if !strings.Contains(donName, reqName) && !strings.Contains(reqName, donName) {
				continue
			}
			total += nameMatchPoints + QuantityBonus(don.Quantity, req.Quantity)
		}
	}
	return total + UrgencyBonus(expiry, now)
}

func QuantityBonus(donated, requested float64) float64 {
	// nothing requested means anything on offer covers it
	if requested <= 0 {
		return fullQuantityBonus
	}
	ratio := donated / requested
	switch {
	case ratio >= 1:
		return fullQuantityBonus
	case ratio >= 0.7:
		return mostQuantityBonus
	case ratio >= 0.4:
		return partialQuantityBonus
	default:
		return minimalQuantityBonus
	}
}

func UrgencyBonus(expiry, now time.Time) float64 {
	hoursLeft := expiry.Sub(now).Hours()
	switch {
	case hoursLeft <= 3:
		return urgentBonus
	case hoursLeft <= 6:
		return soonBonus
	default:
		return 0
	}
}
