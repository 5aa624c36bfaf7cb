package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the base delay between retry attempts, multiplied by the attempt number
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
)

// =============================================================================
// Content Loading
// =============================================================================

const (
	LogMsgLoadingCatalog = "Loading item catalog..."
	LogMsgLoadingGames   = "Loading game definitions..."
	LogMsgGamesResolved  = "Game definitions resolved"

	ErrMsgFailedCreateLoader = "failed to create catalog loader"
	ErrMsgFailedLoadCatalog  = "failed to load item catalog"
	ErrMsgEmptyCatalog       = "item catalog is empty"
	ErrMsgFailedLoadGames    = "failed to load game definitions"
	ErrMsgFailedResolveGames = "failed to resolve game definitions"
)

// GameWeaponCase is the game whose reveal delay is configured separately
const GameWeaponCase = "weapon_case"

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgMissionCountersRegistered  = "Mission counters registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingStore               = "Closing store..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStoreCloseFailed           = "Store close failed"
)
