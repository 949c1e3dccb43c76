package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes. These back the
// operator search over tickets and specs; ent schemas cannot express them.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tickets_text_gin
		ON tickets USING gin(to_tsvector('english', title || ' ' || description))`)
	if err != nil {
		return fmt.Errorf("failed to create tickets GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_spec_docs_text_gin
		ON spec_docs USING gin(to_tsvector('english', title || ' ' || description))`)
	if err != nil {
		return fmt.Errorf("failed to create spec_docs GIN index: %w", err)
	}

	return nil
}

// CreatePartialIndexes creates partial indexes ent cannot express.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// An agent runs at most one task at a time.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS task_one_active_per_agent
		ON tasks (assigned_agent_id)
		WHERE status IN ('assigned', 'running') AND assigned_agent_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create active-task index: %w", err)
	}

	// The poll hot path scans only unacked messages per sandbox.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS sandboxmessage_unacked
		ON sandbox_messages (sandbox_id, id)
		WHERE acked = FALSE`)
	if err != nil {
		return fmt.Errorf("failed to create unacked-message index: %w", err)
	}

	return nil
}
