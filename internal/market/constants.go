package market

// Error message constants
const (
	ErrMsgBeginTxFailed       = "failed to begin transaction"
	ErrMsgCommitFailed        = "failed to commit transaction"
	ErrMsgGetCharacterFailed  = "failed to get character"
	ErrMsgGetEntryFailed      = "failed to get inventory entry"
	ErrMsgEscrowFailed        = "failed to escrow listed items"
	ErrMsgCreateListingFailed = "failed to create listing"
	ErrMsgGetListingFailed    = "failed to get listing"
	ErrMsgListListingsFailed  = "failed to list listings"
	ErrMsgCreditBuyerFailed   = "failed to credit buyer"
	ErrMsgMarkSoldFailed      = "failed to mark listing sold"
)

// Log message constants
const (
	LogMsgCreateCalled       = "CreateMarketListing called"
	LogMsgListingCreated     = "Market listing created"
	LogMsgPurchaseCalled     = "PurchaseMarketItem called"
	LogMsgPurchaseSkipped    = "Purchase skipped"
	LogMsgListingSold        = "Market listing sold"
	LogMsgPublishEventFailed = "Failed to publish market event"
)
