// Package report turns a navigation request into a Page. Every render
// reads the injected dataset and builds its charts from scratch.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/sentiboard/internal/classifier"
	"github.com/spacesedan/sentiboard/internal/dataset"
	"github.com/spacesedan/sentiboard/internal/models"
)

const (
	DEFAULT_PREVIEW_ROWS = 5
	DEFAULT_TOP_WORDS    = 15
	RATING_BINS          = 5
	REVIEW_LENGTH_BINS   = 30
	RECORD_TIMEOUT       = 5 * time.Second
)

// Recorder receives every successful prediction made from the Testing view.
type Recorder interface {
	Record(ctx context.Context, event models.PredictionEvent) error
}

type Config struct {
	PreviewRows int
	TopWords    int

	// Backend and Model are copied onto recorded prediction events.
	Backend string
	Model   string

	// RecordTimeout bounds each Recorder call.
	RecordTimeout time.Duration
}

type Request struct {
	View  models.View
	Label models.LabelColumn

	// Text and Submitted carry the Testing view form.
	Text      string
	Submitted bool
}

type Renderer struct {
	ds         *dataset.Dataset
	classifier classifier.Classifier
	recorders  []Recorder
	cfg        Config
	now        func() time.Time
}

func New(ds *dataset.Dataset, c classifier.Classifier, cfg Config, recorders ...Recorder) *Renderer {
	if cfg.PreviewRows <= 0 {
		cfg.PreviewRows = DEFAULT_PREVIEW_ROWS
	}
	if cfg.TopWords <= 0 {
		cfg.TopWords = DEFAULT_TOP_WORDS
	}
	if cfg.RecordTimeout <= 0 {
		cfg.RecordTimeout = RECORD_TIMEOUT
	}
	return &Renderer{
		ds:         ds,
		classifier: c,
		recorders:  recorders,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Render builds the page for req. An unknown view or label column is a
// caller error and no page is produced.
func (r *Renderer) Render(ctx context.Context, req Request) (*Page, error) {
	start := time.Now()

	var page *Page
	var err error
	switch req.View {
	case models.ViewDataUnderstanding:
		page, err = r.dataUnderstanding()
	case models.ViewDataPreparation:
		page, err = r.dataPreparation()
	case models.ViewModelingEvaluation:
		page, err = r.modelingEvaluation(req.Label)
	case models.ViewTesting:
		page = r.testing(ctx, req)
	default:
		err = fmt.Errorf("%w: %q", models.ErrUnknownView, string(req.View))
	}
	if err != nil {
		slog.Error("[Renderer] Failed to render view",
			slog.String("view", string(req.View)),
			slog.String("error", err.Error()))
		return nil, err
	}

	page.View = req.View
	slog.Debug("[Renderer] Rendered view",
		slog.String("view", string(req.View)),
		slog.Int("sections", len(page.Sections)),
		slog.Duration("elapsed", time.Since(start)))
	return page, nil
}

// previewColumns is the full dataset schema in file order.
var previewColumns = []models.TextColumn{
	models.ContentColumn,
	{Name: models.COLUMN_SCORE, Value: func(r models.Review) string { return strconv.Itoa(r.Score) }},
	{Name: models.COLUMN_REVIEW_LENGTH, Value: func(r models.Review) string { return strconv.Itoa(r.ReviewLength) }},
	models.CleanReviewColumn,
	models.NormalizedContentColumn,
	models.TokensColumn,
	models.StemmedTextColumn,
	models.LabelColumnLabel.TextColumn(),
	models.LabelColumnLexicon.TextColumn(),
	models.LabelColumnIndoBERT.TextColumn(),
}

func (r *Renderer) testing(ctx context.Context, req Request) *Page {
	page := &Page{
		Title: "📝 Testing Sentimen IndoBERT",
		Control: &Control{
			Kind:   ControlTextArea,
			Label:  "Masukkan teks ulasan:",
			Value:  req.Text,
			Submit: "Prediksi",
		},
	}
	if !req.Submitted {
		return page
	}

	if strings.TrimSpace(req.Text) == "" {
		page.Sections = append(page.Sections, alert(AlertWarning, "Masukkan teks dulu ya.", ""))
		return page
	}

	p, err := r.classifier.Classify(ctx, req.Text)
	if err != nil {
		slog.Error("[Renderer] Prediction failed",
			slog.String("kind", classifier.KindOf(err).String()),
			slog.String("error", err.Error()))
		page.Sections = append(page.Sections, alert(AlertError, predictionFailure(err), ""))
		return page
	}

	page.Sections = append(page.Sections, alert(AlertSuccess, "Hasil Prediksi: ", p.Label))
	r.record(ctx, req.Text, p)
	return page
}

func (r *Renderer) record(ctx context.Context, text string, p models.Prediction) {
	if len(r.recorders) == 0 {
		return
	}
	event := models.NewPredictionEvent(text, p, r.cfg.Backend, r.cfg.Model, r.now())
	for _, rec := range r.recorders {
		recCtx, cancel := context.WithTimeout(ctx, r.cfg.RecordTimeout)
		err := rec.Record(recCtx, event)
		cancel()
		if err != nil {
			slog.Warn("[Renderer] Failed to record prediction",
				slog.String("id", event.ID),
				slog.String("error", err.Error()))
		}
	}
}

func predictionFailure(err error) string {
	var ce *classifier.Error
	if !errors.As(err, &ce) {
		return "Prediksi gagal: " + err.Error()
	}
	switch ce.Kind {
	case classifier.KindUnavailable:
		return "Model tidak tersedia saat ini, coba lagi nanti. (" + err.Error() + ")"
	case classifier.KindTimeout:
		return "Model tidak merespons tepat waktu. (" + err.Error() + ")"
	case classifier.KindEmptyResult:
		return "Model tidak mengembalikan label."
	default:
		return "Prediksi gagal: " + err.Error()
	}
}
