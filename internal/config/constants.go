package config

const (
	// Configuration file paths
	ConfigPathCatalogItems  = "configs/catalog/items.json"
	ConfigPathCatalogExtra  = "configs/catalog/extra_items.json"
	ConfigPathImageMap      = "configs/catalog/image_map.json"
	ConfigPathCatalogSchema = "configs/schemas/catalog_items.schema.json"
	ConfigPathGames         = "configs/games.yaml"
	ConfigPathDeadLetter    = "data/dead_letter.jsonl"

	DefaultSQLitePath = "data/spinvault.db"
)

// Seed values for a freshly created ledger
const (
	DefaultSeedBalance    = "9999999999"
	DefaultPlayerName     = "Survivor"
	DefaultPlayerBio      = "I love Free Fire!"
	DefaultDailyStoreSize = 20
)
