package app

import (
	"fmt"

	"lodge_rates/internal/domain"
)

// MapRates projects every rate plan onto a LodgeRate using the plan's first
// date entry, preserving plan order. A plan without dates fails the whole
// mapping; no partial result is returned.
func MapRates(in domain.LittleHotelierRates) (domain.LodgeRates, error) {
	out := domain.LodgeRates{Rates: make([]domain.LodgeRate, 0, len(in.RatePlans))}
	for _, rp := range in.RatePlans {
		r, err := mapRatePlan(rp)
		if err != nil {
			return domain.LodgeRates{}, err
		}
		out.Rates = append(out.Rates, r)
	}
	return out, nil
}

func mapRatePlan(rp domain.RatePlan) (domain.LodgeRate, error) {
	if len(rp.RatePlanDates) == 0 {
		return domain.LodgeRate{}, fmt.Errorf("%w: plan %d (%q)", domain.ErrMappingFault, rp.ID, rp.Name)
	}
	d := rp.RatePlanDates[0]
	return domain.LodgeRate{
		AccommodationType: rp.Name,
		Rate:              d.Rate,
		NumAvailable:      d.Available,
	}, nil
}
