package app

import (
	"context"

	"github.com/rs/zerolog"

	"lodge_rates/internal/domain"
)

type RatesService struct {
	client domain.RatesClient
	dates  DateProvider
}

func NewRatesService(c domain.RatesClient, d DateProvider) *RatesService {
	return &RatesService{client: c, dates: d}
}

// Rates runs date -> fetch -> map for today's single-day window.
func (s *RatesService) Rates(ctx context.Context) (domain.LodgeRates, error) {
	l := zerolog.Ctx(ctx)
	l.Info().Msg("rates requested")

	date := s.dates.Today()
	l.Info().Str("date", date).Msg("today's date")

	lh, err := s.client.FetchRates(ctx, date)
	if err != nil {
		return domain.LodgeRates{}, err
	}

	// A single-day window should yield exactly one date per plan; only the
	// first is used, extra entries are surfaced here.
	for _, rp := range lh.RatePlans {
		if n := len(rp.RatePlanDates); n > 1 {
			l.Debug().Uint32("plan_id", rp.ID).Int("dates", n).Msg("rate plan has more than one date, using the first")
		}
	}

	return MapRates(lh)
}
