package classifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/spacesedan/sentiboard/internal/models"
)

// Lazy defers building a backend until the first Classify call and keeps
// it for the life of the process. A failed build is not remembered; the
// next call tries again. Concurrent callers share one in-flight build, and
// each stops waiting when its own context is done.
type Lazy struct {
	backend string
	build   func() (Classifier, error)

	mu      sync.Mutex
	inner   Classifier
	pending *lazyBuild
}

type lazyBuild struct {
	done  chan struct{}
	inner Classifier
	err   error
}

func NewLazy(backend string, build func() (Classifier, error)) *Lazy {
	return &Lazy{backend: backend, build: build}
}

func (l *Lazy) get(ctx context.Context) (Classifier, error) {
	l.mu.Lock()
	if l.inner != nil {
		inner := l.inner
		l.mu.Unlock()
		return inner, nil
	}
	b := l.pending
	if b == nil {
		b = &lazyBuild{done: make(chan struct{})}
		l.pending = b
		go l.run(b)
	}
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, classifyErr(ctx, l.backend, ctx.Err(), nil)
	case <-b.done:
	}
	if b.err != nil {
		return nil, classifyErr(ctx, l.backend, b.err, func(error) bool { return true })
	}
	return b.inner, nil
}

func (l *Lazy) run(b *lazyBuild) {
	start := time.Now()
	inner, err := l.build()

	l.mu.Lock()
	if err == nil {
		l.inner = inner
	}
	l.pending = nil
	l.mu.Unlock()

	if err != nil {
		slog.Error("[Classifier] Failed to initialize backend",
			slog.String("backend", l.backend),
			slog.String("error", err.Error()))
	} else {
		slog.Info("[Classifier] Backend initialized",
			slog.String("backend", l.backend),
			slog.Duration("elapsed", time.Since(start)))
	}

	b.inner, b.err = inner, err
	close(b.done)
}

func (l *Lazy) Classify(ctx context.Context, text string) (models.Prediction, error) {
	inner, err := l.get(ctx)
	if err != nil {
		return models.Prediction{}, err
	}
	return inner.Classify(ctx, text)
}

// HealthCheck builds the backend if needed and probes it. Backends that
// cannot probe count as healthy once built.
func (l *Lazy) HealthCheck(ctx context.Context) bool {
	inner, err := l.get(ctx)
	if err != nil {
		return false
	}
	if hc, ok := inner.(HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return true
}
