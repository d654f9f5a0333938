package classifier

import (
	"context"
	"time"

	"github.com/spacesedan/sentiboard/internal/models"
)

// Timed bounds every call to the wrapped classifier.
type Timed struct {
	next    Classifier
	backend string
	timeout time.Duration
}

func WithTimeout(next Classifier, backend string, timeout time.Duration) *Timed {
	return &Timed{next: next, backend: backend, timeout: timeout}
}

func (t *Timed) Classify(ctx context.Context, text string) (models.Prediction, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	p, err := t.next.Classify(ctx, text)
	if err != nil {
		return models.Prediction{}, classifyErr(ctx, t.backend, err, nil)
	}
	return p, nil
}

func (t *Timed) HealthCheck(ctx context.Context) bool {
	if hc, ok := t.next.(HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return true
}
