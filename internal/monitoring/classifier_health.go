package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/sentiboard/internal/classifier"
)

const HEALTHCHECK_TIMEOUT = 10 * time.Second

// MonitorClassifierHealth probes the classifier every interval until ctx
// is done, storing the latest result in healthy. Only state changes are
// logged.
func MonitorClassifierHealth(ctx context.Context, interval time.Duration, checker classifier.HealthChecker, healthy *atomic.Bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
			isHealthy := checker.HealthCheck(checkCtx)
			cancel()

			if healthy.Swap(isHealthy) != isHealthy {
				if isHealthy {
					slog.Info("[HealthCheck] Classifier is healthy again")
				} else {
					slog.Warn("[HealthCheck] Classifier is unhealthy")
				}
			}
		}
	}
}
