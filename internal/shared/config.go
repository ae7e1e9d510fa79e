package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultRatesURL = "https://apac.littlehotelier.com/api/v1/properties/kakapolodgedirect/rates.json"

var DefaultAllowedOrigins = []string{
	"https://kakapolodge.github.io",
	"https://www.kakapolodge.co.nz",
	"https://kakapolodge.co.nz",
}

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	RatesURL       string
	RatesLocation  *time.Location
	AllowedOrigins []string
	ShutdownGrace  time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", "0.0.0.0:8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		RatesURL:       env("LH_BASE_URL", DefaultRatesURL),
		RatesLocation:  location(env("RATES_TIMEZONE", "UTC")),
		AllowedOrigins: origins(env("CORS_ALLOWED_ORIGINS", strings.Join(DefaultAllowedOrigins, ","))),
		ShutdownGrace:  time.Duration(atoi("SHUTDOWN_GRACE_SECONDS", 5)) * time.Second,
	}
	if len(c.AllowedOrigins) == 0 {
		log.Warn().Msg("CORS_ALLOWED_ORIGINS is empty; cross-origin requests will be refused")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("tz", name).Msg("unknown RATES_TIMEZONE, falling back to UTC")
		return time.UTC
	}
	return loc
}

// origins splits a comma list and drops trailing slashes: browsers send
// the Origin header as scheme://host[:port] only.
func origins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
