package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Dialects understood by Migrate
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// SQLite connection settings
const (
	SQLiteDriverName   = "sqlite"
	SQLiteBusyTimeout  = 5000 // milliseconds
	SQLiteMaxOpenConns = 1
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenSQLite      = "failed to open sqlite database"
	ErrMsgFailedToConfigureSQLite = "failed to configure sqlite"
	ErrMsgUnknownDialect          = "unknown migration dialect"
	ErrMsgFailedToCreateProvider  = "failed to create migration provider"
	ErrMsgMigrationFailed         = "migration failed"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgOpenedSQLite                    = "Opened sqlite database"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgMigrationsUpToDate              = "Database schema is up to date"
)
