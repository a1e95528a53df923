package config

import "time"

const (
	// Configuration file paths
	ConfigPathAfkRewards       = "configs/afk_rewards.yaml"
	ConfigPathAfkRewardsSchema = "configs/schemas/afk_rewards.schema.json"
)

// Defaults for tunables
const (
	DefaultDBMaxConns       = 10
	DefaultDBMaxConnIdle    = 5 * time.Minute
	DefaultDBMaxConnLife    = time.Hour
	DefaultItemCacheSize    = 512
	DefaultItemCacheTTL     = 10 * time.Minute
	DefaultListingsCacheTTL = 15 * time.Second
	DefaultRabbitMQExchange = "idle_realms.events"
	DefaultDeadLetterPath   = "logs/event_deadletter.jsonl"
	DefaultEventMaxRetries  = 3
	DefaultEventRetryDelay  = 2 * time.Second
)
