package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits money carries
const MoneyScale = 2

// MaxMoney is the largest amount a NUMERIC(12,2) column holds
var MaxMoney = decimal.New(999999999999, -MoneyScale)

// MarketListing is an offer to sell a fixed quantity of one item.
// TotalPrice is computed once at creation and never recomputed.
type MarketListing struct {
	ID           int             `json:"id"`
	SellerID     int             `json:"seller_id"`
	ItemID       int             `json:"item_id"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	IsActive     bool            `json:"is_active"`
	Escrowed     bool            `json:"escrowed"`
	BuyerID      *int            `json:"buyer_id,omitempty"`
	SoldAt       *time.Time      `json:"sold_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Populated on reads joined with items and characters
	ItemName   string `json:"item_name,omitempty"`
	SellerName string `json:"seller_name,omitempty"`
}

// ListingTotal computes quantity x price rounded to the money scale
func ListingTotal(quantity int, pricePerUnit decimal.Decimal) decimal.Decimal {
	return pricePerUnit.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyScale)
}

// ValidPrice reports whether price is positive, has at most two decimals
// and fits in a money column
func ValidPrice(price decimal.Decimal) bool {
	return price.IsPositive() &&
		price.Equal(price.Truncate(MoneyScale)) &&
		price.LessThanOrEqual(MaxMoney)
}

// PurchaseSkipReason explains why a purchase changed nothing
type PurchaseSkipReason string

const (
	PurchaseSkipNone          PurchaseSkipReason = ""
	PurchaseSkipNotFound      PurchaseSkipReason = "listing_not_found"
	PurchaseSkipInactive      PurchaseSkipReason = "listing_inactive"
	PurchaseSkipBuyerNotFound PurchaseSkipReason = "buyer_not_found"
	PurchaseSkipSelfPurchase  PurchaseSkipReason = "self_purchase"
)

// PurchaseResult is returned by PurchaseMarketItem. Purchased is false when
// the request was a no-op.
type PurchaseResult struct {
	Purchased bool               `json:"purchased"`
	Reason    PurchaseSkipReason `json:"reason,omitempty"`
	Listing   *MarketListing     `json:"listing,omitempty"`
}
