package littlehotelier

import "lodge_rates/internal/domain"

// Wire shapes of rates.json. Every field the API contract always sends is a
// pointer tagged required, so a missing or null value is rejected instead of
// decoding to its zero value. id and max_stay on a date are genuinely optional.

type wireProperty struct {
	Name      *string    `json:"name" validate:"required"`
	RatePlans []wirePlan `json:"rate_plans" validate:"required,dive"`
}

type wirePlan struct {
	ID            *uint32    `json:"id" validate:"required"`
	Name          *string    `json:"name" validate:"required"`
	RatePlanDates []wireDate `json:"rate_plan_dates" validate:"required,dive"`
}

type wireDate struct {
	ID               *uint32 `json:"id"`
	Date             *string `json:"date" validate:"required"`
	Rate             *uint16 `json:"rate" validate:"required"`
	MinStay          *uint8  `json:"min_stay" validate:"required"`
	StopOnlineSell   *bool   `json:"stop_online_sell" validate:"required"`
	CloseToArrival   *bool   `json:"close_to_arrival" validate:"required"`
	CloseToDeparture *bool   `json:"close_to_departure" validate:"required"`
	MaxStay          *uint8  `json:"max_stay"`
	Available        *uint8  `json:"available" validate:"required"`
}

// toDomain assumes p passed validation.
func (p wireProperty) toDomain() domain.LittleHotelierRates {
	out := domain.LittleHotelierRates{
		Name:      *p.Name,
		RatePlans: make([]domain.RatePlan, 0, len(p.RatePlans)),
	}
	for _, rp := range p.RatePlans {
		plan := domain.RatePlan{
			ID:            *rp.ID,
			Name:          *rp.Name,
			RatePlanDates: make([]domain.RatePlanDate, 0, len(rp.RatePlanDates)),
		}
		for _, d := range rp.RatePlanDates {
			plan.RatePlanDates = append(plan.RatePlanDates, domain.RatePlanDate{
				ID:               d.ID,
				Date:             *d.Date,
				Rate:             *d.Rate,
				MinStay:          *d.MinStay,
				StopOnlineSell:   *d.StopOnlineSell,
				CloseToArrival:   *d.CloseToArrival,
				CloseToDeparture: *d.CloseToDeparture,
				MaxStay:          d.MaxStay,
				Available:        *d.Available,
			})
		}
		out.RatePlans = append(out.RatePlans, plan)
	}
	return out
}
