package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"
	BackendVader       = "vader"
	BackendHugot       = "hugot"
)

const (
	DEFAULT_ADDR             = ":8501"
	DEFAULT_DATASET_PATH     = "data/hasil_sentimen.csv"
	DEFAULT_CLASSIFIER_MODEL = "w11wo/indonesian-roberta-base-sentiment-classifier"
	DEFAULT_HF_API_URL       = "https://router.huggingface.co/hf-inference/models"
	DEFAULT_OPENAI_MODEL     = "gpt-4o-mini"
	DEFAULT_HUGOT_MODEL_DIR  = "./models"
	DEFAULT_PREDICTION_TOPIC = "dashboard-predictions"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env         string
	Addr        string
	DatasetPath string
	LogLevel    string

	PreviewRows int
	TopWords    int

	Classifier ClassifierConfig
	Valkey     ValkeyConfig
	Kafka      KafkaConfig
	DynamoDB   DynamoDBConfig

	HealthcheckInterval time.Duration
}

type ClassifierConfig struct {
	Backend       string
	Model         string
	Timeout       time.Duration
	HFAPIURL      string
	HFAPIToken    string
	HFMaxRetries  int
	OpenAIAPIKey  string
	OpenAIModel   string
	HugotModelDir string
	PredictionTTL time.Duration
}

type ValkeyConfig struct {
	Address  string
	Password string
	TLS      bool
}

// Enabled reports whether a prediction cache should be attached.
func (v ValkeyConfig) Enabled() bool { return v.Address != "" }

type KafkaConfig struct {
	Broker string
	Topic  string
}

func (k KafkaConfig) Enabled() bool { return k.Broker != "" }

type DynamoDBConfig struct {
	Table    string
	Region   string
	Endpoint string
}

func (d DynamoDBConfig) Enabled() bool { return d.Table != "" }

// Load reads the dashboard configuration from the process environment.
// Call LoadEnv first to pull in the env file for the current APP_ENV.
func Load() (Config, error) {
	var errs []error

	cfg := Config{
		Env:         getEnv("APP_ENV", "dev"),
		Addr:        getEnv("DASHBOARD_ADDR", DEFAULT_ADDR),
		DatasetPath: getEnv("DATASET_PATH", DEFAULT_DATASET_PATH),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		PreviewRows: getInt("PREVIEW_ROWS", 5, &errs),
		TopWords:    getInt("TOP_WORDS", 15, &errs),
		Classifier: ClassifierConfig{
			Backend:       strings.ToLower(getEnv("CLASSIFIER_BACKEND", BackendHuggingFace)),
			Model:         getEnv("CLASSIFIER_MODEL", DEFAULT_CLASSIFIER_MODEL),
			Timeout:       getDuration("CLASSIFIER_TIMEOUT", 30*time.Second, &errs),
			HFAPIURL:      strings.TrimRight(getEnv("HF_API_URL", DEFAULT_HF_API_URL), "/"),
			HFAPIToken:    os.Getenv("HF_API_TOKEN"),
			HFMaxRetries:  getInt("HF_MAX_RETRIES", 1, &errs),
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnv("OPENAI_MODEL", DEFAULT_OPENAI_MODEL),
			HugotModelDir: getEnv("HUGOT_MODEL_DIR", DEFAULT_HUGOT_MODEL_DIR),
			PredictionTTL: getDuration("PREDICTION_CACHE_TTL", 24*time.Hour, &errs),
		},
		Valkey: ValkeyConfig{
			Address:  os.Getenv("VALKEY_INIT_ADDRESS"),
			Password: os.Getenv("VALKEY_PASSWORD"),
			TLS:      os.Getenv("VALKEY_TLS") == "true",
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
			Topic:  getEnv("KAFKA_TOPIC_PREDICTIONS", DEFAULT_PREDICTION_TOPIC),
		},
		DynamoDB: DynamoDBConfig{
			Table:    os.Getenv("DYNAMODB_TABLE"),
			Region:   getEnv("AWS_REGION", "us-west-2"),
			Endpoint: os.Getenv("AWS_ENDPOINT"),
		},
		HealthcheckInterval: getDuration("HEALTHCHECK_INTERVAL", 0, &errs),
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.Classifier.Backend {
	case BackendHuggingFace, BackendOpenAI, BackendVader, BackendHugot:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown classifier backend %q", ErrInvalidConfig, c.Classifier.Backend))
	}
	if c.DatasetPath == "" {
		errs = append(errs, fmt.Errorf("%w: DATASET_PATH is empty", ErrInvalidConfig))
	}
	if c.PreviewRows <= 0 {
		errs = append(errs, fmt.Errorf("%w: PREVIEW_ROWS must be positive, got %d", ErrInvalidConfig, c.PreviewRows))
	}
	if c.TopWords <= 0 {
		errs = append(errs, fmt.Errorf("%w: TOP_WORDS must be positive, got %d", ErrInvalidConfig, c.TopWords))
	}
	if c.Classifier.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: CLASSIFIER_TIMEOUT must be positive", ErrInvalidConfig))
	}
	if c.Classifier.HFMaxRetries < 1 {
		errs = append(errs, fmt.Errorf("%w: HF_MAX_RETRIES must be at least 1", ErrInvalidConfig))
	}
	if c.Classifier.Backend == BackendOpenAI && c.Classifier.OpenAIAPIKey == "" {
		errs = append(errs, fmt.Errorf("%w: OPENAI_API_KEY is required for the openai backend", ErrInvalidConfig))
	}
	if ttl := c.Classifier.PredictionTTL; ttl < 0 || (ttl > 0 && ttl < time.Millisecond) {
		errs = append(errs, fmt.Errorf("%w: PREDICTION_CACHE_TTL must be 0 or at least 1ms, got %s", ErrInvalidConfig, ttl))
	}
	if c.HealthcheckInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: HEALTHCHECK_INTERVAL must not be negative", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int, errs *[]error) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, raw))
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidConfig, key, raw))
		return defaultValue
	}
	return v
}
