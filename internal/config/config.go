package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/SpinVault_Go/internal/logger"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	StoreDriver string
	SQLitePath  string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int

	CatalogItemsPath    string
	CatalogExtraPath    string
	CatalogImageMapPath string
	CatalogSchemaPath   string
	GamesConfigPath     string

	RevealDelay         time.Duration
	RouletteRevealDelay time.Duration
	CaseRevealDelay     time.Duration

	SeedGold       int64
	SeedDiamonds   int64
	SeedName       string
	SeedBio        string
	DailyStoreSize int

	PlayerCacheSize int
	PlayerCacheTTL  time.Duration

	DeadLetterPath string
	Timezone       string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; real env vars take over
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", logger.LogLevelInfo)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", logger.LogFormatText)),
		ServiceName: getEnv("SERVICE_NAME", logger.DefaultServiceName),
		Version:     getEnv("VERSION", logger.DefaultVersion),
		Environment: getEnv("ENVIRONMENT", logger.EnvironmentDev),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		SQLitePath:  getEnv("SQLITE_PATH", DefaultSQLitePath),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "spinvault"),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", 10),

		CatalogItemsPath:    getEnv("CATALOG_ITEMS_PATH", ConfigPathCatalogItems),
		CatalogExtraPath:    getEnv("CATALOG_EXTRA_PATH", ConfigPathCatalogExtra),
		CatalogImageMapPath: getEnv("CATALOG_IMAGE_MAP_PATH", ConfigPathImageMap),
		CatalogSchemaPath:   getEnv("CATALOG_SCHEMA_PATH", ConfigPathCatalogSchema),
		GamesConfigPath:     getEnv("GAMES_CONFIG_PATH", ConfigPathGames),

		RevealDelay:         getEnvAsDuration("REVEAL_DELAY", time.Second),
		RouletteRevealDelay: getEnvAsDuration("ROULETTE_REVEAL_DELAY", 5*time.Second),
		CaseRevealDelay:     getEnvAsDuration("CASE_REVEAL_DELAY", 5*time.Second),

		SeedName:       getEnv("SEED_PLAYER_NAME", DefaultPlayerName),
		SeedBio:        getEnv("SEED_PLAYER_BIO", DefaultPlayerBio),
		DailyStoreSize: getEnvAsInt("DAILY_STORE_SIZE", DefaultDailyStoreSize),

		PlayerCacheSize: getEnvAsInt("PLAYER_CACHE_SIZE", 1024),
		PlayerCacheTTL:  getEnvAsDuration("PLAYER_CACHE_TTL", 30*time.Minute),

		DeadLetterPath: getEnv("DEAD_LETTER_PATH", ConfigPathDeadLetter),
		Timezone:       getEnv("TIMEZONE", "Local"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SeedGold, err = strconv.ParseInt(getEnv("SEED_GOLD", DefaultSeedBalance), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid SEED_GOLD value: %w", err)
	}
	if cfg.SeedDiamonds, err = strconv.ParseInt(getEnv("SEED_DIAMONDS", DefaultSeedBalance), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid SEED_DIAMONDS value: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges that parsing alone cannot catch
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: expected memory, sqlite or postgres", c.StoreDriver)
	}
	if c.StoreDriver == DriverSQLite && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER=sqlite")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	if c.SeedGold < 0 || c.SeedDiamonds < 0 {
		return fmt.Errorf("seed balances must not be negative")
	}
	if c.DailyStoreSize <= 0 {
		return fmt.Errorf("DAILY_STORE_SIZE must be positive")
	}
	if c.PlayerCacheSize <= 0 {
		return fmt.Errorf("PLAYER_CACHE_SIZE must be positive")
	}
	if c.RevealDelay < 0 || c.RouletteRevealDelay < 0 || c.CaseRevealDelay < 0 {
		return fmt.Errorf("reveal delays must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	return nil
}

// Location resolves the configured calendar timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// LoggerConfig converts the app config into logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment,
		c.Environment == logger.EnvironmentDev)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
