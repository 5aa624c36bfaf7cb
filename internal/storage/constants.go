package storage

import "time"

// Pool tuning for the postgres driver
const (
	DefaultConnMaxIdle = 5 * time.Minute
	DefaultConnMaxLife = 30 * time.Minute
)

// Error Messages
const (
	ErrMsgUnknownDriver = "unknown store driver"
	ErrMsgStoreClosed   = "store is closed"
)

// Log Messages
const (
	LogMsgStoreOpened = "Opened state store"
	LogMsgStoreClosed = "Closed state store"
)
