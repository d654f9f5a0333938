package classifier

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiboard/internal/models"
)

func TestLazyBuildsOnce(t *testing.T) {
	builds := 0
	l := NewLazy("test", func() (Classifier, error) {
		builds++
		return Func(func(_ context.Context, text string) (models.Prediction, error) {
			return models.Prediction{Label: text}, nil
		}), nil
	})
	assert.Zero(t, builds)

	for _, text := range []string{"a", "b", "c"} {
		p, err := l.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, text, p.Label)
	}
	assert.Equal(t, 1, builds)
	assert.True(t, l.HealthCheck(context.Background()))
}

func TestLazyRetriesFailedBuild(t *testing.T) {
	builds := 0
	l := NewLazy("test", func() (Classifier, error) {
		builds++
		if builds == 1 {
			return nil, errors.New("model download failed")
		}
		return NewVader(), nil
	})

	_, err := l.Classify(context.Background(), "halo")
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))
	assert.EqualError(t, errors.Unwrap(err), "model download failed")

	_, err = l.Classify(context.Background(), "halo")
	require.NoError(t, err)
	assert.Equal(t, 2, builds)
}

func TestLazyHealthCheckFailsWhenBuildFails(t *testing.T) {
	l := NewLazy("test", func() (Classifier, error) {
		return nil, errors.New("no model")
	})
	assert.False(t, l.HealthCheck(context.Background()))
}

func TestLazyCallerStopsWaitingOnSlowBuild(t *testing.T) {
	release := make(chan struct{})
	builds := 0
	l := NewLazy("test", func() (Classifier, error) {
		builds++
		<-release
		return NewVader(), nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := l.Classify(ctx, "halo")
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
	assert.Less(t, time.Since(start), time.Second)

	close(release)
	p, err := l.Classify(context.Background(), "pelayanan bagus sekali")
	require.NoError(t, err)
	assert.NotEmpty(t, p.Label)
	assert.Equal(t, 1, builds)
}

func TestLazyConcurrentCallersShareBuild(t *testing.T) {
	release := make(chan struct{})
	var builds atomic.Int32
	l := NewLazy("test", func() (Classifier, error) {
		builds.Add(1)
		<-release
		return Func(func(_ context.Context, text string) (models.Prediction, error) {
			return models.Prediction{Label: text}, nil
		}), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Classify(context.Background(), "halo")
			assert.NoError(t, err)
		}()
	}
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
}
