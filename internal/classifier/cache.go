package classifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/sentiboard/internal/clients"
	"github.com/spacesedan/sentiboard/internal/models"
)

type Cache interface {
	GetPrediction(ctx context.Context, key string) (models.Prediction, bool, error)
	SetPrediction(ctx context.Context, key string, p models.Prediction, ttl time.Duration) error
}

var _ Cache = (*clients.ValkeyClient)(nil)

// Cached answers repeated texts from the cache. Cache failures fall
// through to the backend and never fail the call.
type Cached struct {
	next  Classifier
	cache Cache
	model string
	ttl   time.Duration
}

func WithCache(next Classifier, cache Cache, model string, ttl time.Duration) *Cached {
	return &Cached{next: next, cache: cache, model: model, ttl: ttl}
}

func (c *Cached) Classify(ctx context.Context, text string) (models.Prediction, error) {
	key := clients.PredictionKey(c.model, text)

	p, ok, err := c.cache.GetPrediction(ctx, key)
	if err != nil {
		slog.Warn("[Classifier] Prediction cache lookup failed",
			slog.String("error", err.Error()))
	}
	if ok {
		slog.Debug("[Classifier] Prediction cache hit", slog.String("key", key))
		return p, nil
	}

	p, err = c.next.Classify(ctx, text)
	if err != nil {
		return p, err
	}

	if c.ttl > 0 {
		if err := c.cache.SetPrediction(ctx, key, p, c.ttl); err != nil {
			slog.Warn("[Classifier] Prediction cache store failed",
				slog.String("error", err.Error()))
		}
	}
	return p, nil
}

func (c *Cached) HealthCheck(ctx context.Context) bool {
	if hc, ok := c.next.(HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return true
}
