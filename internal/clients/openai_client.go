package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIRequestTimeout = 60 * time.Second
)

const openAISentimentPrompt = `You are a sentiment classifier for Indonesian app-store reviews.
Answer with exactly one lowercase word: positive, neutral or negative.
No punctuation, no explanation.`

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

type OpenAIClient struct {
	Client *openai.Client
	Model  string
}

func GetOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	if apiKey == "" {
		slog.Error("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		return nil, fmt.Errorf("[OpenAIClient] missing OPENAI_API_KEY")
	}
	openAIOnce.Do(func() {
		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithHTTPClient(&http.Client{Timeout: openAIRequestTimeout}),
			),
			Model: model,
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout),
			slog.String("model", model))
	})
	return openAIClientInstance, nil
}

// ClassifySentiment asks the chat model for a single sentiment label.
func (c *OpenAIClient) ClassifySentiment(ctx context.Context, text string) (string, error) {
	start := time.Now()

	completion, err := c.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISentimentPrompt),
			openai.UserMessage(text),
		}),
		Model:       openai.F(openai.ChatModel(c.Model)),
		Temperature: openai.Float(0),
	})
	if err != nil {
		slog.Error("[OpenAIClient] Sentiment request failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}

	slog.Info("[OpenAIClient] Sentiment request successful",
		slog.Duration("elapsed", time.Since(start)))
	return NormalizeSentimentLabel(completion.Choices[0].Message.Content), nil
}

// NormalizeSentimentLabel trims model chatter down to a bare label.
func NormalizeSentimentLabel(raw string) string {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,:!\"'`*")
}
