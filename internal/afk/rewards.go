package afk

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/validation"
)

// Roller is the randomness source for reward rolls. Float64 returns [0, 1).
type Roller interface {
	Float64() float64
}

// RewardTable decides the items found during one elapsed hour of a session
type RewardTable interface {
	Roll(realm domain.Realm, hour int, roller Roller) []domain.ItemStack
}

type randomRoller struct{}

func (randomRoller) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// NewRandomRoller returns a Roller backed by math/rand/v2
func NewRandomRoller() Roller {
	return randomRoller{}
}

// Drop is one independent chance to find an item
type Drop struct {
	ItemID   int     `yaml:"item_id"`
	Chance   float64 `yaml:"chance"`
	Quantity int     `yaml:"quantity"`
	// MinHour skips the drop for earlier hours (1-based)
	MinHour int `yaml:"min_hour,omitempty"`
}

// DropTable is the list of drops rolled each hour
type DropTable struct {
	Drops []Drop `yaml:"drops"`
}

// RewardsConfig is the YAML reward table
type RewardsConfig struct {
	Version string                     `yaml:"version"`
	Default DropTable                  `yaml:"default"`
	Realms  map[domain.Realm]DropTable `yaml:"realms"`
}

// ConfigTable is a RewardTable driven by RewardsConfig
type ConfigTable struct {
	cfg RewardsConfig
}

// NewConfigTable wraps a decoded reward configuration
func NewConfigTable(cfg RewardsConfig) *ConfigTable {
	return &ConfigTable{cfg: cfg}
}

// DefaultRewardTable rolls one placeholder item at 30% per hour in every realm
func DefaultRewardTable() *ConfigTable {
	return NewConfigTable(RewardsConfig{
		Version: "1.0",
		Default: DropTable{Drops: []Drop{{
			ItemID:   domain.PlaceholderItemID,
			Chance:   DefaultDropChance,
			Quantity: DefaultDropQuantity,
		}}},
	})
}

// Roll checks every drop of the realm's table once, in table order
func (t *ConfigTable) Roll(realm domain.Realm, hour int, roller Roller) []domain.ItemStack {
	table, ok := t.cfg.Realms[realm]
	if !ok {
		table = t.cfg.Default
	}

	var found []domain.ItemStack
	for _, d := range table.Drops {
		if hour < d.MinHour {
			continue
		}
		if roller.Float64() < d.Chance {
			found = append(found, domain.ItemStack{ItemID: d.ItemID, Quantity: d.Quantity})
		}
	}
	return found
}

// LoadRewardTable reads a YAML reward table and validates it against schemaPath
func LoadRewardTable(path, schemaPath string) (*ConfigTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadRewardsFailed, err)
	}

	if err := validation.NewSchemaValidator().ValidateYAML(data, schemaPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRewardsConfig, err)
	}

	var cfg RewardsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadRewardsFailed, err)
	}
	for realm := range cfg.Realms {
		if !realm.Valid() {
			return nil, fmt.Errorf("%s: %w: %s", ErrMsgInvalidRewardsConfig, domain.ErrInvalidRealm, realm)
		}
	}

	logger.Info(LogMsgRewardsLoaded, "path", path, "version", cfg.Version, "realm_overrides", len(cfg.Realms))
	return NewConfigTable(cfg), nil
}

// rollSession rolls every elapsed hour in order
func rollSession(table RewardTable, roller Roller, realm domain.Realm, hours int) []domain.ItemStack {
	found := []domain.ItemStack{}
	for h := 1; h <= hours; h++ {
		found = append(found, table.Roll(realm, h, roller)...)
	}
	return found
}
