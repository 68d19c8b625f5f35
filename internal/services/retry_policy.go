package services

import (
	"errors"
	"time"

	"gravecare/pkg/utils"
)

type RetryConfig struct {
	MaxRetries  int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Exponential bool
}

// RetryPolicy decides whether and when a failed webhook handler is re-run
// locally. Provider-originated redelivery is a separate mechanism and is
// absorbed by the event-id idempotency check instead.
type RetryPolicy struct {
	cfg RetryConfig
}

func NewRetryPolicy(cfg RetryConfig) RetryPolicy {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay
	}
	return RetryPolicy{cfg: cfg}
}

// NextDelay returns base*2^retryCount capped at MaxDelay, or a flat BaseDelay
// when exponential growth is disabled.
func (p RetryPolicy) NextDelay(retryCount int) time.Duration {
	if !p.cfg.Exponential {
		return p.cfg.BaseDelay
	}
	delay := p.cfg.BaseDelay
	for i := 0; i < retryCount; i++ {
		delay *= 2
		if delay >= p.cfg.MaxDelay {
			return p.cfg.MaxDelay
		}
	}
	if delay > p.cfg.MaxDelay {
		return p.cfg.MaxDelay
	}
	return delay
}

// ShouldRetry rejects signature/auth and validation failures outright and
// allows transient failures up to the attempt budget. attempts counts runs
// already made.
func (p RetryPolicy) ShouldRetry(err error, attempts int) bool {
	if err == nil {
		return false
	}
	if attempts > p.cfg.MaxRetries {
		return false
	}
	switch {
	case errors.Is(err, utils.ErrInvalidCredentials),
		errors.Is(err, utils.ErrInvalidPayload),
		errors.Is(err, utils.ErrNotResourceOwner),
		errors.Is(err, utils.ErrInvalidRelation),
		errors.Is(err, utils.ErrInvalidDateRange),
		errors.Is(err, utils.ErrSecondDateNotAllowed),
		errors.Is(err, utils.ErrMultiYearNotAllowed),
		errors.Is(err, utils.ErrOrderNotFound),
		errors.Is(err, utils.ErrBookingNotFound),
		errors.Is(err, utils.ErrProfileNotFound),
		errors.Is(err, utils.ErrNotFound):
		return false
	}
	return true
}

func (p RetryPolicy) MaxRetries() int { return p.cfg.MaxRetries }
