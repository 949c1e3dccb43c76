// Package database provides test clients backed by a shared PostgreSQL
// testcontainer with per-test schema isolation.
package database

import (
	"testing"

	"github.com/helmsman-ai/helmsman/pkg/database"
	"github.com/helmsman-ai/helmsman/test/util"
)

// NewTestClient creates a test database client with its own isolated schema.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: uses a shared testcontainer.
// Schema drop and connection close are registered on t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
