// Package classifier adapts external sentiment models to a single
// synchronous call: text in, one label out.
package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacesedan/sentiboard/internal/models"
)

type Classifier interface {
	Classify(ctx context.Context, text string) (models.Prediction, error)
}

// Func lets a plain function serve as a Classifier.
type Func func(ctx context.Context, text string) (models.Prediction, error)

func (f Func) Classify(ctx context.Context, text string) (models.Prediction, error) {
	return f(ctx, text)
}

// HealthChecker is implemented by backends that can probe their model.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

type Kind int

const (
	KindUnavailable Kind = iota + 1
	KindTimeout
	KindInference
	KindEmptyResult
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindTimeout:
		return "timeout"
	case KindInference:
		return "inference"
	case KindEmptyResult:
		return "empty result"
	default:
		return "unknown"
	}
}

// Error is the typed failure every backend returns.
type Error struct {
	Kind    Kind
	Backend string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s classifier: %s", e.Backend, e.Kind)
	}
	return fmt.Sprintf("%s classifier: %s: %v", e.Backend, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the failure kind of err, or 0 when err is not a
// classifier error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

// classifyErr maps a backend failure onto a typed Error.
func classifyErr(ctx context.Context, backend string, err error, unavailable func(error) bool) error {
	if err == nil {
		return nil
	}
	var ce *Error
	if errors.As(err, &ce) {
		return err
	}

	kind := KindInference
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = KindTimeout
	case unavailable != nil && unavailable(err):
		kind = KindUnavailable
	}
	return &Error{Kind: kind, Backend: backend, Err: err}
}
