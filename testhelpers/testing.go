package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"careops/internal/models"
	"careops/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// TestDatabaseURLEnv names the DSN of a disposable Postgres used by
// integration tests. Tests skip when it is unset.
const TestDatabaseURLEnv = "CAREOPS_TEST_DATABASE_URL"

// TestDB holds the database connection for testing
type TestDB struct {
	Pool *pgxpool.Pool
}

// SetupTestDB connects, applies migrations and empties every table. The pool
// is closed when the test ends.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := os.Getenv(TestDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set", TestDatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, dsn, zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.Migrate(ctx, pool); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE workspaces, users, contacts, bookings, inventory_items CASCADE`); err != nil {
		t.Fatalf("Failed to truncate test database: %v", err)
	}

	return &TestDB{Pool: pool}
}

// SetupTestWorkspace inserts a bare workspace and returns its id
func SetupTestWorkspace(t *testing.T, db *TestDB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Pool.Exec(context.Background(),
		`INSERT INTO workspaces (id, name, email, timezone, created_at) VALUES ($1, $2, $3, $4, NOW())`,
		id, "Test Workspace", "owner@test.local", "UTC")
	if err != nil {
		t.Fatalf("Failed to create test workspace: %v", err)
	}
	return id
}

// SetupTestContact inserts a contact without a phone number
func SetupTestContact(t *testing.T, db *TestDB, workspaceID uuid.UUID, name string) *models.Contact {
	t.Helper()

	contact := &models.Contact{
		ID:          uuid.New(),
		Name:        name,
		Email:       "contact@test.local",
		WorkspaceID: workspaceID,
	}
	err := db.Pool.QueryRow(context.Background(),
		`INSERT INTO contacts (id, name, email, phone, workspace_id, created_at)
		 VALUES ($1, $2, $3, NULL, $4, clock_timestamp()) RETURNING created_at`,
		contact.ID, contact.Name, contact.Email, contact.WorkspaceID).Scan(&contact.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test contact: %v", err)
	}
	return contact
}
