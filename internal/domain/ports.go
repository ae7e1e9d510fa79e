package domain

import "context"

type RatesClient interface {
	FetchRates(ctx context.Context, date string) (LittleHotelierRates, error)
}
