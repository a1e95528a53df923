package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/IdleRealms_Go/internal/database"
	"github.com/osse101/IdleRealms_Go/internal/domain"
)

// setupTestDB starts a throwaway Postgres, applies the embedded migrations
// and returns a pool that is closed when the test ends.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString: connStr,
		MaxConns:   25,
		MaxIdle:    time.Minute,
		MaxLife:    time.Hour,
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return pool
}

// seedCharacter inserts a user with the given tier and one character in realm
func seedCharacter(t *testing.T, pool *pgxpool.Pool, name string, tier domain.MembershipTier, realm domain.Realm) *domain.Character {
	t.Helper()
	ctx := context.Background()
	users := NewUserRepository(pool)

	u, err := users.CreateUser(ctx, &domain.User{
		Username:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		Membership:   tier,
	})
	if err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}

	c, err := users.CreateCharacter(ctx, u.ID, name)
	if err != nil {
		t.Fatalf("failed to create character %s: %v", name, err)
	}

	if realm != "" && realm != c.CurrentRealm {
		if _, err := pool.Exec(ctx, `UPDATE characters SET current_realm = $2 WHERE id = $1`, c.ID, realm); err != nil {
			t.Fatalf("failed to move character to %s: %v", realm, err)
		}
		c.CurrentRealm = realm
	}
	return c
}

// shiftAfkWindow moves a running session and its character's window into the past
func shiftAfkWindow(t *testing.T, pool *pgxpool.Pool, sessionID int, by time.Duration) {
	t.Helper()
	ctx := context.Background()
	interval := fmt.Sprintf("%d seconds", int(by.Seconds()))

	_, err := pool.Exec(ctx, `
		UPDATE afk_sessions
		SET start_time = start_time - $2::interval, end_time = end_time - $2::interval
		WHERE id = $1`, sessionID, interval)
	if err != nil {
		t.Fatalf("failed to shift session window: %v", err)
	}
	_, err = pool.Exec(ctx, `
		UPDATE characters
		SET afk_start_time = afk_start_time - $2::interval, afk_end_time = afk_end_time - $2::interval
		WHERE id = (SELECT character_id FROM afk_sessions WHERE id = $1)`, sessionID, interval)
	if err != nil {
		t.Fatalf("failed to shift character window: %v", err)
	}
}

// quantityOf returns the ledger quantity of itemID, 0 when absent
func quantityOf(t *testing.T, pool *pgxpool.Pool, characterID, itemID int) int {
	t.Helper()
	var q int
	err := pool.QueryRow(context.Background(),
		`SELECT COALESCE((SELECT quantity FROM inventory WHERE character_id = $1 AND item_id = $2), 0)`,
		characterID, itemID).Scan(&q)
	if err != nil {
		t.Fatalf("failed to read inventory: %v", err)
	}
	return q
}
