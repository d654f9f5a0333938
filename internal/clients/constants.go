package clients

import "time"

const (
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 8 * time.Second
	USER_AGENT      = "sentiboard-client/1.0 (+https://github.com/spacesedan/sentiboard)"
)
