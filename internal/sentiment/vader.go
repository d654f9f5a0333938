package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/sentiboard/internal/models"
)

const (
	POSITIVE_THRESHOLD = 0.20
	NEGATIVE_THRESHOLD = -0.20
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()

	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// PlainText strips markdown markup and links, leaving bare words.
func PlainText(input string) string {
	output := blackfriday.Run([]byte(RemoveLinks(input)), blackfriday.WithNoExtensions())
	stripped := tagPattern.ReplaceAllString(string(output), " ")
	return strings.Join(strings.Fields(stripped), " ")
}

// Analyze scores text with VADER and buckets the compound score into a
// positive, neutral or negative label.
func Analyze(text string) models.Prediction {
	score := analyzer.PolarityScores(PlainText(text)).Compound
	return models.Prediction{Label: LabelFor(score), Score: score}
}

func LabelFor(compound float64) string {
	switch {
	case compound >= POSITIVE_THRESHOLD:
		return "positive"
	case compound <= NEGATIVE_THRESHOLD:
		return "negative"
	default:
		return "neutral"
	}
}
