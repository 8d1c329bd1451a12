package idempotency

import "time"

// Status values for idempotency entries
const (
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
	StatusFailed     = "FAILED"
)

// Record is the shape persisted in the idempotency DynamoDB table. One
// record guards one form submission.
type Record struct {
	IdempotencyKey string    `dynamodbav:"idempotency_key"` // PK
	Scope          string    `dynamodbav:"scope"`           // e.g. "discount.create"
	Status         string    `dynamodbav:"status"`
	ResponseBody   string    `dynamodbav:"response_body,omitempty"`
	ResponseStatus int       `dynamodbav:"response_status,omitempty"`
	CreatedAt      time.Time `dynamodbav:"created_at"`
	UpdatedAt      time.Time `dynamodbav:"updated_at"`
	ExpiresAt      int64     `dynamodbav:"expires_at"` // TTL epoch seconds
	Note           string    `dynamodbav:"note,omitempty"`
}

// Decision tells a caller what to do with a submission.
type Decision int

const (
	// Proceed: this caller owns the key and must finish with MarkDone or
	// MarkFailed.
	Proceed Decision = iota
	// Replay: the submission already completed; answer with the stored
	// response.
	Replay
	// Busy: another request holds the key.
	Busy
)
