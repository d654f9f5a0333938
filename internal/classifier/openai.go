package classifier

import (
	"context"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/clients"
	"github.com/spacesedan/sentiboard/internal/models"
)

type SentimentCompleter interface {
	ClassifySentiment(ctx context.Context, text string) (string, error)
}

// OpenAI asks a chat model for the label. The API reports no confidence,
// so Score is always zero.
type OpenAI struct {
	client SentimentCompleter
}

func NewOpenAI(client SentimentCompleter) *OpenAI {
	return &OpenAI{client: client}
}

var _ SentimentCompleter = (*clients.OpenAIClient)(nil)

func (o *OpenAI) Classify(ctx context.Context, text string) (models.Prediction, error) {
	label, err := o.client.ClassifySentiment(ctx, text)
	if err != nil {
		return models.Prediction{}, classifyErr(ctx, config.BackendOpenAI, err, nil)
	}
	if label == "" {
		return models.Prediction{}, &Error{Kind: KindEmptyResult, Backend: config.BackendOpenAI}
	}
	return models.Prediction{Label: label}, nil
}
