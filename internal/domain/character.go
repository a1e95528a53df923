package domain

import "time"

// Realm identifies where a character currently adventures
type Realm string

const (
	RealmEarth Realm = "earth"
	RealmMoon  Realm = "moon"
	RealmMars  Realm = "mars"
)

// Realms lists every realm in progression order
var Realms = []Realm{RealmEarth, RealmMoon, RealmMars}

// Valid reports whether r is a known realm
func (r Realm) Valid() bool {
	switch r {
	case RealmEarth, RealmMoon, RealmMars:
		return true
	}
	return false
}

// Character starting stats
const (
	DefaultCharacterLevel   = 1
	DefaultCharacterHealth  = 100
	DefaultCharacterAttack  = 10
	DefaultCharacterDefense = 5
)

// AfkWindow is the interval of a running AFK session. A nil window on a
// character means the character is idle.
type AfkWindow struct {
	Start time.Time `json:"afk_start_time"`
	End   time.Time `json:"afk_end_time"`
}

// Character is a player avatar owned by a user
type Character struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	Name         string     `json:"name"`
	Level        int        `json:"level"`
	Experience   int64      `json:"experience"`
	Health       int        `json:"health"`
	MaxHealth    int        `json:"max_health"`
	Attack       int        `json:"attack"`
	Defense      int        `json:"defense"`
	CurrentRealm Realm      `json:"current_realm"`
	Afk          *AfkWindow `json:"afk,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAfk reports whether the character has a running AFK window
func (c *Character) IsAfk() bool {
	return c.Afk != nil
}

// ProfessionType is a gathering profession
type ProfessionType string

const (
	ProfessionMining   ProfessionType = "mining"
	ProfessionChopping ProfessionType = "chopping"
)

// Profession tracks a character's progress in a gathering profession
type Profession struct {
	ID          int            `json:"id"`
	CharacterID int            `json:"character_id"`
	Type        ProfessionType `json:"type"`
	Level       int            `json:"level"`
	Experience  int            `json:"experience"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
