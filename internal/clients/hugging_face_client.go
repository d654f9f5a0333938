package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/spacesedan/sentiboard/internal/models"
)

var (
	huggingFaceInstance *HuggingFaceClient
	huggingFaceOnce     sync.Once
)

type HuggingFaceConfig struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	MaxRetries int
}

type HuggingFaceClient struct {
	Client     *http.Client
	BaseURL    string
	MaxRetries int
}

// StatusError is returned when the inference API answers with a non-2xx
// status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("inference API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("inference API returned status %d: %s", e.StatusCode, e.Message)
}

// Unavailable reports whether the model is missing or still loading.
func (e *StatusError) Unavailable() bool {
	return e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusServiceUnavailable
}

// GetHuggingFaceClient returns the process-wide client, building it on the
// first call.
func GetHuggingFaceClient(cfg HuggingFaceConfig) *HuggingFaceClient {
	huggingFaceOnce.Do(func() {
		slog.Info("[HuggingFaceClient] Initializing Client",
			slog.Duration("timeout", cfg.Timeout),
			slog.String("base_url", cfg.BaseURL),
			slog.Bool("authenticated", cfg.Token != ""))
		huggingFaceInstance = NewHuggingFaceClient(cfg)
	})
	return huggingFaceInstance
}

func NewHuggingFaceClient(cfg HuggingFaceConfig) *HuggingFaceClient {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		}))
		httpClient.Timeout = cfg.Timeout
	}

	retries := cfg.MaxRetries
	if retries < 1 {
		retries = 1
	}

	return &HuggingFaceClient{
		Client:     httpClient,
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		MaxRetries: retries,
	}
}

// DoWithRetry sends the request built by newReq, retrying transport errors
// and 5xx answers up to MaxRetries attempts in total.
func (h *HuggingFaceClient) DoWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < h.MaxRetries; attempt++ {
		var req *http.Request
		req, err = newReq()
		if err != nil {
			return nil, err
		}

		resp, err = h.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		if attempt == h.MaxRetries-1 {
			break
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[HuggingFaceClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, MAX_BACKOFF)
	}

	return resp, err
}

// Classify runs text classification for a single input against model.
func (h *HuggingFaceClient) Classify(ctx context.Context, model, text string) (models.ClassificationResponse, error) {
	var result models.ClassificationResponse
	slog.Info("[HuggingFaceClient] Requesting sentiment classification",
		slog.String("model", model))
	start := time.Now()

	err := h.postJSON(ctx, h.modelURL(model), models.ClassificationRequest{Inputs: text}, &result)
	if err != nil {
		slog.Error("[HuggingFaceClient] Sentiment classification request failed",
			slog.String("model", model),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	slog.Info("[HuggingFaceClient] Sentiment classification request successful",
		slog.String("model", model),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

// HealthCheck reports whether the model endpoint answers without a server
// error.
func (h *HuggingFaceClient) HealthCheck(ctx context.Context, model string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.modelURL(model), nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := h.Client.Do(req)
	if err != nil {
		slog.Warn("[HuggingFaceClient] Health check failed",
			slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode < 500
}

func (h *HuggingFaceClient) modelURL(model string) string {
	return h.BaseURL + "/" + strings.TrimLeft(model, "/")
}

func (h *HuggingFaceClient) postJSON(ctx context.Context, endpoint string, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", USER_AGENT)
		return req, nil
	}

	resp, err := h.DoWithRetry(ctx, newReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var apiErr models.InferenceError
		_ = json.Unmarshal(respBody, &apiErr)
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[HuggingFaceClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))

		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// IsUnavailable reports whether err means the model cannot serve right now.
func IsUnavailable(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Unavailable()
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
