package models

import (
	"encoding/json"
	"fmt"
)

type ClassificationRequest struct {
	Inputs string `json:"inputs"`
}

type ClassificationScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassificationResponse is the text-classification payload of the Hugging
// Face inference API. The API answers either a list per input
// ([[{...}]]) or a flat list ([{...}]) depending on the deployment.
type ClassificationResponse [][]ClassificationScore

func (c *ClassificationResponse) UnmarshalJSON(data []byte) error {
	var nested [][]ClassificationScore
	if err := json.Unmarshal(data, &nested); err == nil {
		*c = nested
		return nil
	}

	var flat []ClassificationScore
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("unexpected classification payload: %w", err)
	}
	*c = ClassificationResponse{flat}
	return nil
}

// Top returns the highest scoring label for the first input.
func (c ClassificationResponse) Top() (ClassificationScore, bool) {
	if len(c) == 0 || len(c[0]) == 0 {
		return ClassificationScore{}, false
	}
	best := c[0][0]
	for _, s := range c[0][1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, true
}

type InferenceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}
