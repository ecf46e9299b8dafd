package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// ApplySchema executes the embedded up migrations in order against db.
// Tests use this for schema-scoped databases where golang-migrate's
// version bookkeeping would collide across parallel schemas; production
// always goes through runMigrations.
func ApplySchema(ctx context.Context, db *stdsql.DB) error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	var ups []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			ups = append(ups, entry.Name())
		}
	}
	sort.Strings(ups)

	for _, name := range ups {
		content, err := fs.ReadFile(migrationsFS, "migrations/"+name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}
	return nil
}
