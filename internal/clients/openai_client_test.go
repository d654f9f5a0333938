package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSentimentLabel(t *testing.T) {
	tests := map[string]string{
		"positive":             "positive",
		"  Negative.\n":        "negative",
		"\"neutral\"":          "neutral",
		"**positive** because": "positive",
		"":                     "",
	}
	for raw, want := range tests {
		assert.Equal(t, want, NormalizeSentimentLabel(raw), "raw=%q", raw)
	}
}

func TestPredictionKey(t *testing.T) {
	a := PredictionKey("m", "Pelayanan sangat memuaskan")
	b := PredictionKey("m", "Pelayanan sangat memuaskan")
	c := PredictionKey("other", "Pelayanan sangat memuaskan")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, VALKEY_PREDICTION_PREFIX+":m:")
}
