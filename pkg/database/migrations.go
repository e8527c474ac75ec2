package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateCheckConstraints adds the work_items status CHECK constraints that
// Ent cannot express in its schema DSL. The SQL migrations carry the same
// constraints for production databases; this helper exists for test
// databases created through entClient.Schema.Create.
func CreateCheckConstraints(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	constraints := []struct {
		name string
		expr string
	}{
		{
			"work_items_posted_fields",
			`status <> 'posted' OR (posted_at IS NOT NULL AND upstream_comment_id IS NOT NULL AND login_id IS NOT NULL)`,
		},
		{
			"work_items_failed_fields",
			`status <> 'failed' OR error_message IS NOT NULL`,
		},
	}

	for _, c := range constraints {
		stmt := fmt.Sprintf(
			`ALTER TABLE work_items DROP CONSTRAINT IF EXISTS %s;
			 ALTER TABLE work_items ADD CONSTRAINT %s CHECK (%s)`,
			c.name, c.name, c.expr,
		)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create constraint %s: %w", c.name, err)
		}
	}

	return nil
}
