package models

import (
	"errors"
	"fmt"
)

var ErrUnknownView = errors.New("unknown view")

// View is one of the four dashboard pages.
type View string

const (
	ViewDataUnderstanding  View = "data-understanding"
	ViewDataPreparation    View = "data-preparation"
	ViewModelingEvaluation View = "modeling-evaluation"
	ViewTesting            View = "testing"
)

// Views is the menu, in display order.
var Views = []View{
	ViewDataUnderstanding,
	ViewDataPreparation,
	ViewModelingEvaluation,
	ViewTesting,
}

// ParseView validates a menu value. The empty string selects the first
// view.
func ParseView(s string) (View, error) {
	if s == "" {
		return Views[0], nil
	}
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

func (v View) String() string { return string(v) }

// Title is the menu caption of the view.
func (v View) Title() string {
	switch v {
	case ViewDataUnderstanding:
		return "📁 Data Understanding"
	case ViewDataPreparation:
		return "⚙️ Data Preparation"
	case ViewModelingEvaluation:
		return "📊 Modeling & Evaluation"
	case ViewTesting:
		return "📝 Testing"
	default:
		return string(v)
	}
}
