package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/spacesedan/sentiboard/internal/models"
)

const SENTIMENT_PREDICTIONS_TABLE_NAME = "SentimentPredictions"

// PutItemAPI is the slice of the DynamoDB client the store needs.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// PredictionStore writes prediction events to a DynamoDB table keyed by id.
type PredictionStore struct {
	client PutItemAPI
	table  string
}

func NewPredictionStore(client PutItemAPI, table string) *PredictionStore {
	if table == "" {
		table = SENTIMENT_PREDICTIONS_TABLE_NAME
	}
	return &PredictionStore{client: client, table: table}
}

func (s *PredictionStore) Record(ctx context.Context, event models.PredictionEvent) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("[DynamoDB] failed to marshal prediction event: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] failed to store prediction event: %w", err)
	}

	slog.Info("[DynamoDB] Stored prediction event",
		slog.String("table", s.table),
		slog.String("event_id", event.ID))
	return nil
}
