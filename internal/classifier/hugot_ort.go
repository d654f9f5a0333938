//go:build ORT

package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/models"
)

// Hugot runs the model locally through ONNX Runtime. The pipeline is not
// safe for concurrent use, so calls are serialised.
type Hugot struct {
	mu       sync.Mutex
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewHugot(modelDir, model string) (*Hugot, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, &Error{Kind: KindUnavailable, Backend: config.BackendHugot, Err: err}
	}

	modelPath := filepath.Join(modelDir, strings.ReplaceAll(model, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[HugotClassifier] Model not found, downloading...",
			slog.String("model", model))
		modelPath, err = hugot.DownloadModel(model, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, &Error{Kind: KindUnavailable, Backend: config.BackendHugot, Err: fmt.Errorf("download %s: %w", model, err)}
		}
		slog.Info("[HugotClassifier] Model downloaded successfully", slog.String("path", modelPath))
	} else {
		slog.Info("[HugotClassifier] Using existing model", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Backend: config.BackendHugot, Err: fmt.Errorf("init session: %w", err)}
	}

	pipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "dashboardSentimentPipeline",
	})
	if err != nil {
		_ = session.Destroy()
		return nil, &Error{Kind: KindUnavailable, Backend: config.BackendHugot, Err: fmt.Errorf("init pipeline: %w", err)}
	}

	return &Hugot{session: session, pipeline: pipeline}, nil
}

func (h *Hugot) Classify(ctx context.Context, text string) (models.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return models.Prediction{}, classifyErr(ctx, config.BackendHugot, err, nil)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	output, err := h.pipeline.RunPipeline([]string{text})
	if err != nil {
		return models.Prediction{}, classifyErr(ctx, config.BackendHugot, err, nil)
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return models.Prediction{}, &Error{Kind: KindEmptyResult, Backend: config.BackendHugot}
	}

	best := output.ClassificationOutputs[0][0]
	for _, c := range output.ClassificationOutputs[0][1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return models.Prediction{Label: best.Label, Score: float64(best.Score)}, nil
}

func (h *Hugot) Close() error {
	return h.session.Destroy()
}
