package middleware

import (
	"duedate-service/config"
	"duedate-service/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		m.rateLimiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return m
}
