package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spacesedan/sentiboard/config"
	"github.com/spacesedan/sentiboard/internal/classifier"
	"github.com/spacesedan/sentiboard/internal/clients"
	"github.com/spacesedan/sentiboard/internal/clients/kafka_client"
	"github.com/spacesedan/sentiboard/internal/dataset"
	"github.com/spacesedan/sentiboard/internal/db"
	"github.com/spacesedan/sentiboard/internal/monitoring"
	"github.com/spacesedan/sentiboard/internal/report"
	"github.com/spacesedan/sentiboard/internal/web"
)

type serveFlags struct {
	addr    string
	data    string
	backend string
}

func newServeCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.addr, "addr", "", "listen address (overrides DASHBOARD_ADDR)")
	cmd.Flags().StringVar(&flags.data, "data", "", "dataset CSV path (overrides DATASET_PATH)")
	cmd.Flags().StringVar(&flags.backend, "backend", "", "classifier backend: huggingface, openai, vader or hugot (overrides CLASSIFIER_BACKEND)")
	return cmd
}

func (f serveFlags) apply(cfg *config.Config) {
	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.data != "" {
		cfg.DatasetPath = f.data
	}
	if f.backend != "" {
		cfg.Classifier.Backend = strings.ToLower(f.backend)
	}
}

func runServe(ctx context.Context, flags serveFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := classifier.ModelName(cfg.Classifier)
	c, err := classifier.New(cfg.Classifier)
	if err != nil {
		return err
	}

	if cfg.Valkey.Enabled() {
		vc, err := clients.NewValkeyClient(ctx, clients.ValkeyOptions{
			Address:  cfg.Valkey.Address,
			Password: cfg.Valkey.Password,
			TLS:      cfg.Valkey.TLS,
		})
		if err != nil {
			slog.Warn("[Dashboard] Prediction cache disabled", slog.String("error", err.Error()))
		} else {
			defer vc.Close()
			c = classifier.WithCache(c, vc, model, cfg.Classifier.PredictionTTL)
		}
	}
	timed := classifier.WithTimeout(c, cfg.Classifier.Backend, cfg.Classifier.Timeout)

	var recorders []report.Recorder
	if cfg.Kafka.Enabled() {
		producer, err := kafka_client.NewPredictionProducer(kafka_client.KafkaConfig{
			Broker: cfg.Kafka.Broker,
			Topic:  cfg.Kafka.Topic,
		})
		if err != nil {
			slog.Warn("[Dashboard] Kafka prediction events disabled", slog.String("error", err.Error()))
		} else {
			defer producer.Close()
			recorders = append(recorders, producer)
		}
	}
	if cfg.DynamoDB.Enabled() {
		awsCfg, err := clients.LoadAWSConfig(ctx, clients.AWSOptions{
			Region:   cfg.DynamoDB.Region,
			Endpoint: cfg.DynamoDB.Endpoint,
		})
		if err != nil {
			slog.Warn("[Dashboard] DynamoDB prediction audit disabled", slog.String("error", err.Error()))
		} else {
			client := clients.NewDynamoDBClient(awsCfg, cfg.DynamoDB.Endpoint)
			recorders = append(recorders, db.NewPredictionStore(client, cfg.DynamoDB.Table))
		}
	}

	renderer := report.New(ds, timed, report.Config{
		PreviewRows: cfg.PreviewRows,
		TopWords:    cfg.TopWords,
		Backend:     cfg.Classifier.Backend,
		Model:       model,
	}, recorders...)

	opts := web.Options{Addr: cfg.Addr, Backend: cfg.Classifier.Backend}
	g, gctx := errgroup.WithContext(ctx)

	if cfg.HealthcheckInterval > 0 {
		healthy := &atomic.Bool{}
		healthy.Store(true)
		opts.Healthy = healthy
		g.Go(func() error {
			monitoring.MonitorClassifierHealth(gctx, cfg.HealthcheckInterval, timed, healthy)
			return nil
		})
	}

	server := web.NewServer(renderer, opts)
	g.Go(func() error {
		return server.Run(gctx)
	})

	slog.Info("[Dashboard] Started",
		slog.String("addr", cfg.Addr),
		slog.String("dataset", ds.Source()),
		slog.Int("rows", ds.Len()),
		slog.String("backend", cfg.Classifier.Backend),
		slog.String("model", model),
		slog.Int("recorders", len(recorders)))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("dashboard stopped: %w", err)
	}
	return nil
}
