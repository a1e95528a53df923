package domain

import "time"

// RealmInfo is the catalog description of a realm
type RealmInfo struct {
	ID                   int       `json:"id"`
	Name                 Realm     `json:"name"`
	DisplayName          string    `json:"display_name"`
	RequiredLevel        int       `json:"required_level"`
	RequiredBossDefeated *string   `json:"required_boss_defeated,omitempty"`
	Description          string    `json:"description"`
	CreatedAt            time.Time `json:"created_at"`
}

// MonsterType grades monsters
type MonsterType string

const (
	MonsterNormal MonsterType = "normal"
	MonsterElite  MonsterType = "elite"
	MonsterBoss   MonsterType = "boss"
)

// Monster is a catalog monster living in one realm
type Monster struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	Realm            Realm       `json:"realm"`
	Type             MonsterType `json:"type"`
	Level            int         `json:"level"`
	Health           int         `json:"health"`
	Attack           int         `json:"attack"`
	Defense          int         `json:"defense"`
	ExperienceReward int         `json:"experience_reward"`
	CreatedAt        time.Time   `json:"created_at"`
}

// ChatMessage is a global chat line
type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
