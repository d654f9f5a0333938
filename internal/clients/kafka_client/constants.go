package kafka_client

import "time"

const (
	KAFKA_TOPIC_PREDICTIONS = "dashboard-predictions" // predictions made from the Testing view
)

const (
	MAX_RETRIES      = 3
	RETRY_DELAY      = 500 * time.Millisecond
	FLUSH_TIMEOUT_MS = 5000

	// MESSAGE_TIMEOUT_MS bounds how long librdkafka holds an undelivered event.
	MESSAGE_TIMEOUT_MS = 10000
)
