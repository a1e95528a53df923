package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType is the broad category of a catalog item
type ItemType string

const (
	ItemTypeWeapon   ItemType = "weapon"
	ItemTypeArmor    ItemType = "armor"
	ItemTypeMaterial ItemType = "material"
	ItemTypePotion   ItemType = "potion"
	ItemTypeOther    ItemType = "other"
)

// Rarity of a catalog item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// EquipmentSlot is the body slot an item occupies when equipped.
// SlotNone marks items that cannot be equipped.
type EquipmentSlot string

const (
	SlotNone   EquipmentSlot = ""
	SlotWeapon EquipmentSlot = "weapon"
	SlotHelmet EquipmentSlot = "helmet"
	SlotChest  EquipmentSlot = "chest"
	SlotLegs   EquipmentSlot = "legs"
	SlotBoots  EquipmentSlot = "boots"
	SlotGloves EquipmentSlot = "gloves"
)

// PlaceholderItemID is the catalog item awarded by the default AFK reward table
const PlaceholderItemID = 1

// Item is a catalog entry
type Item struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Type          ItemType        `json:"type"`
	Rarity        Rarity          `json:"rarity"`
	EquipmentSlot EquipmentSlot   `json:"equipment_slot,omitempty"`
	AttackBonus   *int            `json:"attack_bonus,omitempty"`
	DefenseBonus  *int            `json:"defense_bonus,omitempty"`
	HealthBonus   *int            `json:"health_bonus,omitempty"`
	RequiredLevel int             `json:"required_level"`
	MarketValue   decimal.Decimal `json:"market_value"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Equippable reports whether the item occupies an equipment slot
func (i *Item) Equippable() bool {
	return i.EquipmentSlot != SlotNone
}
