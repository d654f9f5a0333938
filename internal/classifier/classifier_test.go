package classifier

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/clients"
	"github.com/spacesedan/sentiboard/internal/models"
)

const testModel = "w11wo/indonesian-roberta-base-sentiment-classifier"

func newHuggingFace(t *testing.T, h http.HandlerFunc) *HuggingFace {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client := clients.NewHuggingFaceClient(clients.HuggingFaceConfig{
		BaseURL:    srv.URL,
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	})
	return NewHuggingFace(client, testModel)
}

func TestHuggingFaceClassify(t *testing.T) {
	hf := newHuggingFace(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[{"label":"negative","score":0.02},{"label":"positive","score":0.95}]]`))
	})

	p, err := hf.Classify(context.Background(), "Pelayanan sangat memuaskan")
	require.NoError(t, err)
	assert.Equal(t, "positive", p.Label)
	assert.InDelta(t, 0.95, p.Score, 1e-9)
}

func TestHuggingFaceUnavailable(t *testing.T) {
	hf := newHuggingFace(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"loading"}`))
	})

	_, err := hf.Classify(context.Background(), "halo")
	require.Error(t, err)
	assert.Equal(t, KindUnavailable, KindOf(err))

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, config.BackendHuggingFace, ce.Backend)
}

func TestHuggingFaceInferenceError(t *testing.T) {
	hf := newHuggingFace(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := hf.Classify(context.Background(), "halo")
	assert.Equal(t, KindInference, KindOf(err))
}

func TestHuggingFaceTimeout(t *testing.T) {
	hf := newHuggingFace(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := hf.Classify(ctx, "halo")
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestHuggingFaceEmptyResult(t *testing.T) {
	hf := newHuggingFace(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := hf.Classify(context.Background(), "halo")
	assert.Equal(t, KindEmptyResult, KindOf(err))
}

type fakeCompleter struct {
	label string
	err   error
}

func (f fakeCompleter) ClassifySentiment(context.Context, string) (string, error) {
	return f.label, f.err
}

func TestOpenAIClassify(t *testing.T) {
	p, err := NewOpenAI(fakeCompleter{label: "neutral"}).Classify(context.Background(), "biasa")
	require.NoError(t, err)
	assert.Equal(t, models.Prediction{Label: "neutral"}, p)

	_, err = NewOpenAI(fakeCompleter{}).Classify(context.Background(), "biasa")
	assert.Equal(t, KindEmptyResult, KindOf(err))

	_, err = NewOpenAI(fakeCompleter{err: errors.New("rate limited")}).Classify(context.Background(), "biasa")
	assert.Equal(t, KindInference, KindOf(err))
}

func TestVaderClassify(t *testing.T) {
	p, err := NewVader().Classify(context.Background(), "This app is great and I love it")
	require.NoError(t, err)
	assert.Equal(t, "positive", p.Label)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewVader().Classify(ctx, "anything")
	assert.Equal(t, KindInference, KindOf(err))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.Equal(t, "timeout", KindTimeout.String())
}

func TestNewSelectsBackend(t *testing.T) {
	c, err := New(config.ClassifierConfig{Backend: config.BackendVader})
	require.NoError(t, err)
	assert.IsType(t, Vader{}, c)

	c, err = New(config.ClassifierConfig{Backend: config.BackendHuggingFace, Model: testModel})
	require.NoError(t, err)
	assert.IsType(t, &Lazy{}, c)

	_, err = New(config.ClassifierConfig{Backend: "bert"})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "vader", ModelName(config.ClassifierConfig{Backend: config.BackendVader, Model: testModel}))
	assert.Equal(t, "gpt-4o-mini", ModelName(config.ClassifierConfig{Backend: config.BackendOpenAI, OpenAIModel: "gpt-4o-mini"}))
	assert.Equal(t, testModel, ModelName(config.ClassifierConfig{Backend: config.BackendHuggingFace, Model: testModel}))
}
