package item

// CacheSchemaVersion invalidates cached entries when the cached shape changes
const CacheSchemaVersion = "1.0"

// Error message constants
const (
	ErrMsgGetItemFailed      = "failed to get item"
	ErrMsgListItemsFailed    = "failed to list items"
	ErrMsgListRealmsFailed   = "failed to list realms"
	ErrMsgGetRealmFailed     = "failed to get realm"
	ErrMsgListMonstersFailed = "failed to list monsters"
)
