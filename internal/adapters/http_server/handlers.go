// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"lodge_rates/internal/domain"
)

type RatesProvider interface {
	Rates(ctx context.Context) (domain.LodgeRates, error)
}

type Handlers struct{ Rates RatesProvider }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/hello", h.hello)
	s.mux.Get("/rates", h.rates)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) hello(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "world"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello, " + name + "!"))
}

func (h *Handlers) rates(w http.ResponseWriter, r *http.Request) {
	l := zerolog.Ctx(r.Context())

	out, err := h.Rates.Rates(r.Context())
	if err != nil {
		if domain.IsUpstream(err) {
			l.Error().Err(err).Msg("rates upstream failure")
			writeProblem(w, http.StatusBadGateway, "Bad Gateway", "rates are unavailable from the property system")
			return
		}
		l.Error().Err(err).Msg("rates failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "rates could not be produced")
		return
	}

	body, err := json.Marshal(out)
	if err != nil {
		l.Error().Err(err).Msg("failed to marshal rates")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "rates could not be produced")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		l.Error().Err(err).Msg("failed to write rates body")
	}
}
