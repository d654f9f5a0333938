package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is the classifier's answer for a single text.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// PredictionEvent is emitted for every successful prediction made from
// the Testing view.
type PredictionEvent struct {
	ID        string    `json:"id" dynamodbav:"id"`
	Text      string    `json:"text" dynamodbav:"text"`
	Label     string    `json:"label" dynamodbav:"label"`
	Score     float64   `json:"score" dynamodbav:"score"`
	Backend   string    `json:"backend" dynamodbav:"backend"`
	Model     string    `json:"model" dynamodbav:"model"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

func NewPredictionEvent(text string, p Prediction, backend, model string, now time.Time) PredictionEvent {
	return PredictionEvent{
		ID:        uuid.NewString(),
		Text:      text,
		Label:     p.Label,
		Score:     p.Score,
		Backend:   backend,
		Model:     model,
		CreatedAt: now.UTC(),
	}
}
