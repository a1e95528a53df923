package logger

// Level and format names accepted by Config
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "idle-realms"
	DefaultVersion     = "dev"
	EnvironmentDev     = "dev"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Attribute keys shared by the game services so log queries line up across packages
const (
	AttrKeyUserID      = "user_id"
	AttrKeyCharacterID = "character_id"
	AttrKeyItemID      = "item_id"
	AttrKeySessionID   = "session_id"
	AttrKeyListingID   = "listing_id"
	AttrKeySellerID    = "seller_id"
	AttrKeyBuyerID     = "buyer_id"
)
