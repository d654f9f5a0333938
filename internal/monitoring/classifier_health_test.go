package monitoring

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type flakyChecker struct {
	calls atomic.Int32
}

// HealthCheck fails on every second probe.
func (f *flakyChecker) HealthCheck(context.Context) bool {
	return f.calls.Add(1)%2 == 1
}

func TestMonitorClassifierHealth(t *testing.T) {
	checker := &flakyChecker{}
	var healthy atomic.Bool
	healthy.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		MonitorClassifierHealth(ctx, 5*time.Millisecond, checker, &healthy)
	}()

	assert.Eventually(t, func() bool { return checker.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, checker.calls.Load()%2 == 1, healthy.Load())
}
