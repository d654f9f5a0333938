package classifier

import (
	"context"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/clients"
	"github.com/spacesedan/sentiboard/internal/models"
)

// HuggingFace calls a hosted text-classification model over the
// inference API.
type HuggingFace struct {
	client *clients.HuggingFaceClient
	model  string
}

func NewHuggingFace(client *clients.HuggingFaceClient, model string) *HuggingFace {
	return &HuggingFace{client: client, model: model}
}

func (h *HuggingFace) Classify(ctx context.Context, text string) (models.Prediction, error) {
	resp, err := h.client.Classify(ctx, h.model, text)
	if err != nil {
		return models.Prediction{}, classifyErr(ctx, config.BackendHuggingFace, err, clients.IsUnavailable)
	}

	top, ok := resp.Top()
	if !ok || top.Label == "" {
		return models.Prediction{}, &Error{Kind: KindEmptyResult, Backend: config.BackendHuggingFace}
	}
	return models.Prediction{Label: top.Label, Score: top.Score}, nil
}

func (h *HuggingFace) HealthCheck(ctx context.Context) bool {
	return h.client.HealthCheck(ctx, h.model)
}
