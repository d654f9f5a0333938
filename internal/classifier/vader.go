package classifier

import (
	"context"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/models"
	"github.com/spacesedan/sentiboard/internal/sentiment"
)

// Vader is the offline lexicon classifier. Score carries the compound
// polarity rather than a probability.
type Vader struct{}

func NewVader() Vader { return Vader{} }

func (Vader) Classify(ctx context.Context, text string) (models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return models.Prediction{}, classifyErr(ctx, config.BackendVader, err, nil)
	}
	return sentiment.Analyze(text), nil
}

func (Vader) HealthCheck(context.Context) bool { return true }
