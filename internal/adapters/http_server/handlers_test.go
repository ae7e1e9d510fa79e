package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpserver "lodge_rates/internal/adapters/http_server"
	"lodge_rates/internal/domain"
)

type fakeRates struct {
	out domain.LodgeRates
	err error
}

func (f *fakeRates) Rates(ctx context.Context) (domain.LodgeRates, error) { return f.out, f.err }

var origins = []string{"https://kakapolodge.github.io", "https://kakapolodge.co.nz"}

func newHandler(p httpserver.RatesProvider) http.Handler {
	srv := httpserver.New(origins)
	srv.MountHandlers(&httpserver.Handlers{Rates: p})
	return srv.Mux()
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	b, _ := io.ReadAll(rr.Body)
	return rr, string(b)
}

func TestHello(t *testing.T) {
	h := newHandler(&fakeRates{})
	cases := map[string]string{
		"/hello":           "Hello, world!",
		"/hello?name=":     "Hello, world!",
		"/hello?name=Kaka": "Hello, Kaka!",
	}
	for target, want := range cases {
		rr, body := do(t, h, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusOK || body != want {
			t.Fatalf("%s: got %d %q, want 200 %q", target, rr.Code, body, want)
		}
	}
}

func TestHealthz(t *testing.T) {
	rr, body := do(t, newHandler(&fakeRates{}), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK || body != "ok" {
		t.Fatalf("got %d %q", rr.Code, body)
	}
}

func TestRates_OK(t *testing.T) {
	p := &fakeRates{out: domain.LodgeRates{Rates: []domain.LodgeRate{
		{AccommodationType: "Standard", Rate: 150, NumAvailable: 3},
	}}}
	rr, body := do(t, newHandler(p), httptest.NewRequest(http.MethodGet, "/rates", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type %q", ct)
	}
	want := `{"rates":[{"accommodation_type":"Standard","rate":150,"num_available":3}]}`
	if body != want {
		t.Fatalf("body %s, want %s", body, want)
	}
}

func TestRates_Failures(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", domain.ErrUpstreamTransport), http.StatusBadGateway},
		{fmt.Errorf("x: %w", domain.ErrUpstreamSchema), http.StatusBadGateway},
		{domain.ErrUpstreamEmpty, http.StatusBadGateway},
		{fmt.Errorf("x: %w", domain.ErrMappingFault), http.StatusBadGateway},
		{errors.New("something else"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rr, body := do(t, newHandler(&fakeRates{err: tc.err}), httptest.NewRequest(http.MethodGet, "/rates", nil))
		if rr.Code != tc.want {
			t.Fatalf("%v: status %d, want %d", tc.err, rr.Code, tc.want)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("%v: content-type %q", tc.err, ct)
		}
		var pb struct {
			Rates  any `json:"rates"`
			Status int `json:"status"`
		}
		if err := json.Unmarshal([]byte(body), &pb); err != nil {
			t.Fatalf("decode problem: %v", err)
		}
		if pb.Rates != nil || pb.Status != tc.want {
			t.Fatalf("unexpected problem body %s", body)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := newHandler(&fakeRates{})
	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/rates", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rr, _ := do(t, h, req)
		return rr
	}

	rr := preflight("https://kakapolodge.github.io")
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://kakapolodge.github.io" {
		t.Fatalf("allowed origin: Access-Control-Allow-Origin = %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Fatalf("credentials must not be allowed, got %q", got)
	}

	rr = preflight("https://evil.example")
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin: Access-Control-Allow-Origin = %q", got)
	}
}

func TestCORS_DisallowedMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/rates", nil)
	req.Header.Set("Origin", "https://kakapolodge.github.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rr, _ := do(t, newHandler(&fakeRates{}), req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("DELETE must not be allowed, got %q", got)
	}
}

func TestCORS_ActualRequest(t *testing.T) {
	p := &fakeRates{out: domain.LodgeRates{Rates: []domain.LodgeRate{}}}
	req := httptest.NewRequest(http.MethodGet, "/rates", nil)
	req.Header.Set("Origin", "https://kakapolodge.co.nz")
	rr, body := do(t, newHandler(p), req)

	if rr.Code != http.StatusOK || body != `{"rates":[]}` {
		t.Fatalf("got %d %s", rr.Code, body)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://kakapolodge.co.nz" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}
