package shared

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord is the stored outcome of a request made with an Idempotency-Key header.
type IdempotencyRecord struct {
	Key         uuid.UUID
	Endpoint    string
	RequestHash string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}
