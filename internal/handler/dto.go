package handler

import (
	"time"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// Money is always rendered with two fractional digits, e.g. "100.50"

// ListingResponse is the wire form of a market listing
type ListingResponse struct {
	ID           int        `json:"id"`
	SellerID     int        `json:"seller_id"`
	SellerName   string     `json:"seller_name,omitempty"`
	ItemID       int        `json:"item_id"`
	ItemName     string     `json:"item_name,omitempty"`
	Quantity     int        `json:"quantity"`
	PricePerUnit string     `json:"price_per_unit" example:"50.25"`
	TotalPrice   string     `json:"total_price" example:"100.50"`
	IsActive     bool       `json:"is_active"`
	Escrowed     bool       `json:"escrowed"`
	BuyerID      *int       `json:"buyer_id,omitempty"`
	SoldAt       *time.Time `json:"sold_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toListingResponse(l *domain.MarketListing) ListingResponse {
	return ListingResponse{
		ID:           l.ID,
		SellerID:     l.SellerID,
		SellerName:   l.SellerName,
		ItemID:       l.ItemID,
		ItemName:     l.ItemName,
		Quantity:     l.Quantity,
		PricePerUnit: l.PricePerUnit.StringFixed(domain.MoneyScale),
		TotalPrice:   l.TotalPrice.StringFixed(domain.MoneyScale),
		IsActive:     l.IsActive,
		Escrowed:     l.Escrowed,
		BuyerID:      l.BuyerID,
		SoldAt:       l.SoldAt,
		CreatedAt:    l.CreatedAt,
	}
}

func toListingResponses(ls []domain.MarketListing) []ListingResponse {
	out := make([]ListingResponse, 0, len(ls))
	for i := range ls {
		out = append(out, toListingResponse(&ls[i]))
	}
	return out
}

// PurchaseResponse reports whether a purchase happened; purchased=false is a no-op
type PurchaseResponse struct {
	Purchased bool             `json:"purchased"`
	Reason    string           `json:"reason,omitempty"`
	Listing   *ListingResponse `json:"listing,omitempty"`
}

// ItemResponse is the wire form of a catalog item
type ItemResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Rarity        string `json:"rarity"`
	EquipmentSlot string `json:"equipment_slot,omitempty"`
	AttackBonus   *int   `json:"attack_bonus,omitempty"`
	DefenseBonus  *int   `json:"defense_bonus,omitempty"`
	HealthBonus   *int   `json:"health_bonus,omitempty"`
	RequiredLevel int    `json:"required_level"`
	MarketValue   string `json:"market_value" example:"12.00"`
}

func toItemResponses(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{
			ID:            it.ID,
			Name:          it.Name,
			Description:   it.Description,
			Type:          string(it.Type),
			Rarity:        string(it.Rarity),
			EquipmentSlot: string(it.EquipmentSlot),
			AttackBonus:   it.AttackBonus,
			DefenseBonus:  it.DefenseBonus,
			HealthBonus:   it.HealthBonus,
			RequiredLevel: it.RequiredLevel,
			MarketValue:   it.MarketValue.StringFixed(domain.MoneyScale),
		})
	}
	return out
}
