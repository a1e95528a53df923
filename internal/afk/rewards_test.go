package afk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

const schemaPath = "configs/schemas/afk_rewards.schema.json"

func TestDefaultRewardTable(t *testing.T) {
	table := DefaultRewardTable()

	t.Run("hit below chance", func(t *testing.T) {
		got := table.Roll(domain.RealmEarth, 1, &scriptedRoller{values: []float64{0.29}})
		assert.Equal(t, []domain.ItemStack{{ItemID: domain.PlaceholderItemID, Quantity: 1}}, got)
	})

	t.Run("miss at chance", func(t *testing.T) {
		assert.Empty(t, table.Roll(domain.RealmMars, 1, &scriptedRoller{values: []float64{0.3}}))
	})
}

func TestConfigTable_RealmOverrideAndMinHour(t *testing.T) {
	table := NewConfigTable(RewardsConfig{
		Default: DropTable{Drops: []Drop{{ItemID: 1, Chance: 1, Quantity: 1}}},
		Realms: map[domain.Realm]DropTable{
			domain.RealmMoon: {Drops: []Drop{
				{ItemID: 9, Chance: 1, Quantity: 2},
				{ItemID: 1, Chance: 1, Quantity: 1, MinHour: 3},
			}},
		},
	})
	roller := &scriptedRoller{values: []float64{0, 0, 0, 0}}

	assert.Equal(t, []domain.ItemStack{{ItemID: 9, Quantity: 2}}, table.Roll(domain.RealmMoon, 2, roller))
	assert.Equal(t, []domain.ItemStack{{ItemID: 9, Quantity: 2}, {ItemID: 1, Quantity: 1}}, table.Roll(domain.RealmMoon, 3, roller))
	assert.Equal(t, []domain.ItemStack{{ItemID: 1, Quantity: 1}}, table.Roll(domain.RealmEarth, 1, roller))
}

func TestRollSession_OneRollPerHour(t *testing.T) {
	roller := &scriptedRoller{values: []float64{0.1, 0.5, 0.2, 0.9}}

	got := rollSession(DefaultRewardTable(), roller, domain.RealmEarth, 4)

	assert.Equal(t, 4, roller.calls)
	assert.Equal(t, []domain.ItemStack{{ItemID: 1, Quantity: 1}, {ItemID: 1, Quantity: 1}}, got)
}

func TestRollSession_ZeroHoursIsEmptyNotNil(t *testing.T) {
	got := rollSession(DefaultRewardTable(), &scriptedRoller{}, domain.RealmEarth, 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadRewardTable_RepositoryConfig(t *testing.T) {
	table, err := LoadRewardTable("../../configs/afk_rewards.yaml", schemaPath)
	require.NoError(t, err)

	got := table.Roll(domain.RealmMoon, 1, &scriptedRoller{values: []float64{0.0}})
	assert.Equal(t, []domain.ItemStack{{ItemID: domain.PlaceholderItemID, Quantity: 1}}, got)
}

func TestLoadRewardTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "chance above one", yaml: "version: \"1\"\ndefault:\n  drops:\n    - {item_id: 1, chance: 2, quantity: 1}\n"},
		{name: "unknown realm", yaml: "version: \"1\"\ndefault: {drops: []}\nrealms:\n  venus: {drops: []}\n"},
		{name: "missing default", yaml: "version: \"1\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rewards.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := LoadRewardTable(path, schemaPath)

			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrMsgInvalidRewardsConfig)
		})
	}
}

func TestLoadRewardTable_MissingFile(t *testing.T) {
	_, err := LoadRewardTable(filepath.Join(t.TempDir(), "nope.yaml"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadRewardsFailed)
}

func TestRandomRoller_Range(t *testing.T) {
	r := NewRandomRoller()
	for i := 0; i < 100; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
