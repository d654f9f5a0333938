package classifier

import (
	"fmt"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/clients"
)

// New returns the configured backend. Remote clients and local models are
// built on first use, so a missing model surfaces as a Classify error
// rather than a startup failure.
func New(cfg config.ClassifierConfig) (Classifier, error) {
	switch cfg.Backend {
	case config.BackendHuggingFace:
		return NewLazy(cfg.Backend, func() (Classifier, error) {
			client := clients.GetHuggingFaceClient(clients.HuggingFaceConfig{
				BaseURL:    cfg.HFAPIURL,
				Token:      cfg.HFAPIToken,
				Timeout:    cfg.Timeout,
				MaxRetries: cfg.HFMaxRetries,
			})
			return NewHuggingFace(client, cfg.Model), nil
		}), nil
	case config.BackendOpenAI:
		return NewLazy(cfg.Backend, func() (Classifier, error) {
			client, err := clients.GetOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
			if err != nil {
				return nil, err
			}
			return NewOpenAI(client), nil
		}), nil
	case config.BackendVader:
		return NewVader(), nil
	case config.BackendHugot:
		return NewLazy(cfg.Backend, func() (Classifier, error) {
			return NewHugot(cfg.HugotModelDir, cfg.Model)
		}), nil
	default:
		return nil, fmt.Errorf("%w: unknown classifier backend %q", config.ErrInvalidConfig, cfg.Backend)
	}
}

// ModelName is the identifier recorded with predictions for a backend.
func ModelName(cfg config.ClassifierConfig) string {
	switch cfg.Backend {
	case config.BackendOpenAI:
		return cfg.OpenAIModel
	case config.BackendVader:
		return "vader"
	default:
		return cfg.Model
	}
}
