package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Default row limits for list reads
const (
	DefaultSessionListLimit = 50
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser      = "failed to insert user"
	ErrMsgFailedToGetUser         = "failed to get user"
	ErrMsgFailedToGetUserByEmail  = "failed to get user by email"
	ErrMsgFailedToGetMembership   = "failed to get membership"
	ErrMsgFailedToInsertCharacter = "failed to insert character"
	ErrMsgFailedToGetCharacter    = "failed to get character"
	ErrMsgFailedToLockCharacter   = "failed to lock character"
	ErrMsgFailedToListCharacters  = "failed to list characters"
	ErrMsgFailedToSetAfk          = "failed to set character afk"
	ErrMsgFailedToFinishAfk       = "failed to finish character afk"
	ErrMsgFailedToSeedProfession  = "failed to seed profession"
	ErrMsgFailedToListProfessions = "failed to list professions"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToGetItem      = "failed to get item"
	ErrMsgFailedToListItems    = "failed to list items"
	ErrMsgFailedToGetRealm     = "failed to get realm"
	ErrMsgFailedToListRealms   = "failed to list realms"
	ErrMsgFailedToListMonsters = "failed to list monsters"
	ErrMsgFailedToInsertChat   = "failed to insert chat message"
	ErrMsgFailedToListChat     = "failed to list chat messages"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToListInventory = "failed to list inventory"
	ErrMsgFailedToGetEntry      = "failed to get inventory entry"
	ErrMsgFailedToInsertEntry   = "failed to insert inventory entry"
	ErrMsgFailedToUpdateEntry   = "failed to update inventory entry"
	ErrMsgFailedToDeleteEntry   = "failed to delete inventory entry"
	ErrMsgFailedToAddQuantity   = "failed to add inventory quantity"
	ErrMsgFailedToUnequipSlot   = "failed to unequip slot"
)

// Error Messages - AFK Operations
const (
	ErrMsgFailedToCreateSession       = "failed to create afk session"
	ErrMsgFailedToGetSession          = "failed to get afk session"
	ErrMsgFailedToCompleteSession     = "failed to complete afk session"
	ErrMsgFailedToListSessions        = "failed to list afk sessions"
	ErrMsgFailedToMarshalItemsFound   = "failed to marshal items found"
	ErrMsgFailedToUnmarshalItemsFound = "failed to unmarshal items found"
)

// Error Messages - Market Operations
const (
	ErrMsgFailedToCreateListing   = "failed to create listing"
	ErrMsgFailedToGetListing      = "failed to get listing"
	ErrMsgFailedToListListings    = "failed to list listings"
	ErrMsgFailedToMarkListingSold = "failed to mark listing sold"
)
