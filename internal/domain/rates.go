package domain

// LittleHotelierRates is one property entry of the Little Hotelier rates.json payload.
type LittleHotelierRates struct {
	Name      string     `json:"name"`
	RatePlans []RatePlan `json:"rate_plans"`
}

type RatePlan struct {
	ID            uint32         `json:"id"`
	Name          string         `json:"name"`
	RatePlanDates []RatePlanDate `json:"rate_plan_dates"`
}

type RatePlanDate struct {
	ID               *uint32 `json:"id"`
	Date             string  `json:"date"` // YYYY-MM-DD
	Rate             uint16  `json:"rate"`
	MinStay          uint8   `json:"min_stay"`
	StopOnlineSell   bool    `json:"stop_online_sell"`
	CloseToArrival   bool    `json:"close_to_arrival"`
	CloseToDeparture bool    `json:"close_to_departure"`
	MaxStay          *uint8  `json:"max_stay"`
	Available        uint8   `json:"available"`
}

// LodgeRates is what /rates returns to browser clients.
type LodgeRates struct {
	Rates []LodgeRate `json:"rates"`
}

type LodgeRate struct {
	AccommodationType string `json:"accommodation_type"`
	Rate              uint16 `json:"rate"`
	NumAvailable      uint8  `json:"num_available"`
}
