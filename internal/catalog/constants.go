package catalog

// PlaceholderSentinel marks image references that are not real artwork.
const PlaceholderSentinel = "placeholder"

// ItemsSchemaName is the registered name of the embedded feed schema.
const ItemsSchemaName = "catalog_items.schema.json"

// Raw feed values used to derive categories
const (
	rawCollectionWeaponSkin  = "WEAPON_SKIN"
	rawCollectionVehicleSkin = "VEHICLE_SKIN"
	rawTypeWeapon            = "WEAPON"
	rawTypeVehicle           = "VEHICLE"
	rawTypeClothesPrefix     = "CLOTHES"
	rawTypeBundle            = "BUNDLE"
	rawTypeAvatar            = "AVATAR"
	rawTypeBanner            = "BANNER"
	rawTypeCharacter         = "CHARACTER"
	vehicleKeyword           = "vehicle"
)

// Log messages
const (
	LogMsgCatalogLoaded    = "Catalog loaded"
	LogMsgDuplicateItem    = "Duplicate catalog id ignored"
	LogMsgFeedSkipped      = "Optional catalog feed not found, skipping"
	LogMsgImageMapSkipped  = "Image map not found, skipping"
	LogMsgMissingIDSkipped = "Catalog record without id skipped"
)

// Error messages
const (
	ErrMsgReadFeedFailed  = "failed to read catalog feed %s: %w"
	ErrMsgParseFeedFailed = "failed to parse catalog feed %s: %w"
	ErrMsgSchemaFailed    = "catalog feed %s failed schema validation: %w"
	ErrMsgImageMapFailed  = "failed to load image map %s: %w"
	ErrMsgInvalidItemID   = "itemID must be a number or string"
)
