package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Retry defaults for the resilient publisher
const (
	DefaultMaxRetries         = 3
	DeadLetterFilePermissions = 0644
	DefaultDeadLetterPath     = "data/dead_letter.jsonl"
)

// Log message constants
const (
	LogMsgPublishFailedRetrying = "Event publish failed, retrying in background"
	LogMsgRetrySucceeded        = "Event published after retry"
	LogMsgRetryFailed           = "Event retry failed"
	LogMsgDeadLetterOpenFailed  = "Failed to open dead letter file"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter file"
	LogMsgDeadLettered          = "Event written to dead letter file"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
