package classifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiboard/internal/models"
)

type memoryCache struct {
	items  map[string]models.Prediction
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]models.Prediction{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) GetPrediction(_ context.Context, key string) (models.Prediction, bool, error) {
	if m.getErr != nil {
		return models.Prediction{}, false, m.getErr
	}
	p, ok := m.items[key]
	return p, ok, nil
}

func (m *memoryCache) SetPrediction(_ context.Context, key string, p models.Prediction, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.items[key] = p
	m.ttls[key] = ttl
	return nil
}

func countingClassifier(calls *int, label string) Classifier {
	return Func(func(context.Context, string) (models.Prediction, error) {
		*calls++
		return models.Prediction{Label: label, Score: 0.8}, nil
	})
}

func TestCachedServesRepeatedText(t *testing.T) {
	calls := 0
	cache := newMemoryCache()
	c := WithCache(countingClassifier(&calls, "positive"), cache, testModel, time.Hour)

	for i := 0; i < 3; i++ {
		p, err := c.Classify(context.Background(), "Pelayanan sangat memuaskan")
		require.NoError(t, err)
		assert.Equal(t, "positive", p.Label)
	}
	assert.Equal(t, 1, calls)
	assert.Len(t, cache.items, 1)
	for _, ttl := range cache.ttls {
		assert.Equal(t, time.Hour, ttl)
	}

	_, err := c.Classify(context.Background(), "aplikasi sering error")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCachedIgnoresCacheFailures(t *testing.T) {
	calls := 0
	cache := newMemoryCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	c := WithCache(countingClassifier(&calls, "negative"), cache, testModel, time.Hour)

	p, err := c.Classify(context.Background(), "lambat")
	require.NoError(t, err)
	assert.Equal(t, "negative", p.Label)
	assert.Equal(t, 1, calls)
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	cache := newMemoryCache()
	failing := Func(func(context.Context, string) (models.Prediction, error) {
		return models.Prediction{}, &Error{Kind: KindTimeout, Backend: "test"}
	})
	c := WithCache(failing, cache, testModel, time.Hour)

	_, err := c.Classify(context.Background(), "halo")
	assert.Equal(t, KindTimeout, KindOf(err))
	assert.Empty(t, cache.items)
}
