package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleRealms_Go/internal/database/postgres"
	"github.com/osse101/IdleRealms_Go/internal/repository"
)

// Repositories holds the Postgres-backed repository implementations
type Repositories struct {
	User      repository.User
	Catalog   repository.Catalog
	Inventory repository.Inventory
	Afk       repository.Afk
	Market    repository.Market
	Chat      repository.Chat
}

// InitializeRepositories creates every repository on the shared pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(dbPool),
		Catalog:   postgres.NewCatalogRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Afk:       postgres.NewAfkRepository(dbPool),
		Market:    postgres.NewMarketRepository(dbPool),
		Chat:      postgres.NewChatRepository(dbPool),
	}
}
