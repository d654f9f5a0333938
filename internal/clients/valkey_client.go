package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/sentiboard/internal/models"
)

const (
	VALKEY_PREDICTION_PREFIX = "sentiboard:prediction"
	VALKEY_RETRY_DELAY       = 250 * time.Millisecond
)

type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
}

// ValkeyClient stores classifier predictions so repeated texts skip the
// model round trip.
type ValkeyClient struct {
	Client valkey.Client
}

func NewValkeyClient(ctx context.Context, o ValkeyOptions) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{o.Address},
		Password:         o.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if o.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", o.Address))
	return &ValkeyClient{Client: client}, nil
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

// PredictionKey derives the cache key for a model and input text.
func PredictionKey(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return VALKEY_PREDICTION_PREFIX + ":" + model + ":" + hex.EncodeToString(sum[:])
}

func (vc *ValkeyClient) GetPrediction(ctx context.Context, key string) (models.Prediction, bool, error) {
	res := vc.DoWithRetry(ctx, func() valkey.Completed {
		return vc.Client.B().Get().Key(key).Build()
	}, 3)

	raw, err := res.ToString()
	if valkey.IsValkeyNil(err) {
		return models.Prediction{}, false, nil
	}
	if err != nil {
		return models.Prediction{}, false, fmt.Errorf("[ValkeyClient] get %s: %w", key, err)
	}

	var p models.Prediction
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return models.Prediction{}, false, fmt.Errorf("[ValkeyClient] decode %s: %w", key, err)
	}
	return p, true, nil
}

func (vc *ValkeyClient) SetPrediction(ctx context.Context, key string, p models.Prediction, ttl time.Duration) error {
	if ttl < time.Millisecond {
		return fmt.Errorf("[ValkeyClient] set %s: ttl %s is below the 1ms expiry resolution", key, ttl)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	res := vc.DoWithRetry(ctx, func() valkey.Completed {
		return vc.Client.B().Set().Key(key).Value(string(raw)).Px(ttl).Build()
	}, 3)

	if err := res.Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] set %s: %w", key, err)
	}
	return nil
}

// DoWithRetry rebuilds the command for every attempt; completed commands
// are recycled by the client once sent. A nil reply is not an error.
func (vc *ValkeyClient) DoWithRetry(ctx context.Context, build func() valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	_ = retryOnConnectionError(ctx, retries, VALKEY_RETRY_DELAY, func() error {
		result = vc.Client.Do(ctx, build())
		if err := result.Error(); err != nil && !valkey.IsValkeyNil(err) {
			return err
		}
		return nil
	})
	return result
}

// retryOnConnectionError calls do up to attempts times, waiting delay
// between calls. Only connection failures are retried, and the wait ends
// early when ctx is done.
func retryOnConnectionError(ctx context.Context, attempts int, delay time.Duration, do func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = do(); err == nil || !isConnectionError(err) {
			return err
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
