package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateIndexes creates the PostgreSQL indexes the ent schema cannot
// express. Label-containment lookups drive correlation candidate queries,
// the service expression index backs the labels->>'service' equality
// filters on list endpoints, and full-text search over report bodies backs
// the report list filters.
func CreateIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	stmts := []struct {
		name string
		ddl  string
	}{
		{"alert labels GIN", `CREATE INDEX IF NOT EXISTS idx_alerts_labels_gin
			ON alerts USING gin(labels jsonb_path_ops)`},
		{"alert service expression", `CREATE INDEX IF NOT EXISTS idx_alerts_labels_service
			ON alerts ((labels->>'service'))`},
		{"report text GIN", `CREATE INDEX IF NOT EXISTS idx_rca_reports_text_gin
			ON rca_reports USING gin(to_tsvector('english', root_cause || ' ' || summary))`},
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("failed to create %s index: %w", s.name, err)
		}
	}
	return nil
}
