// internal/adapters/littlehotelier/client.go
package littlehotelier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"lodge_rates/internal/adapters/observability"
	"lodge_rates/internal/domain"
)

const service = "littlehotelier"

type Client struct {
	base string
	hc   *http.Client
	v    *validator.Validate
}

// New returns a client for the property rates endpoint at base.
// A nil hc gets a client with transport defaults (no timeout override).
func New(base string, hc *http.Client) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("rates base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid rates base URL: %w", err)
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{base: base, hc: hc, v: validator.New()}, nil
}

// RatesURL builds the single-day query for date.
func (c *Client) RatesURL(date string) string {
	d := url.QueryEscape(date)
	return fmt.Sprintf("%s?start_date=%s&end_date=%s", c.base, d, d)
}

// FetchRates returns the first property of the rates payload for date.
func (c *Client) FetchRates(ctx context.Context, date string) (domain.LittleHotelierRates, error) {
	u := c.RatesURL(date)
	zerolog.Ctx(ctx).Info().Str("url", u).Msg("fetching rates")

	var out []wireProperty
	if err := c.get(ctx, u, &out); err != nil {
		return domain.LittleHotelierRates{}, err
	}
	if out == nil {
		return domain.LittleHotelierRates{}, fmt.Errorf("%w: null body", domain.ErrUpstreamSchema)
	}
	// the whole array must conform, not just the element we use
	for i := range out {
		if err := c.v.Struct(out[i]); err != nil {
			return domain.LittleHotelierRates{}, fmt.Errorf("%w: property %d: %v", domain.ErrUpstreamSchema, i, err)
		}
	}
	if len(out) == 0 {
		return domain.LittleHotelierRates{}, domain.ErrUpstreamEmpty
	}

	first := out[0].toDomain()
	zerolog.Ctx(ctx).Info().
		Str("property", first.Name).
		Int("rate_plans", len(first.RatePlans)).
		Msg("got response from upstream")
	return first, nil
}

// get performs a single GET and decodes a 2xx JSON body into out.
func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lodge-rates/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, "rates", 0, time.Since(start))
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTransport, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, "rates", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: bad status %d: %s", domain.ErrUpstreamTransport, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrUpstreamTransport, err)
	}
	// Unmarshal, unlike a streaming Decode, rejects data after the top-level value.
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamSchema, err)
	}
	return nil
}
