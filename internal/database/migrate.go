package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/flashcards/schemas"
)

// Migrate applies the embedded migrations for the driver of db that have not
// been recorded in schema_version yet. It returns the versions it applied.
func Migrate(ctx context.Context, db *sqlx.DB) ([]int, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return nil, fmt.Errorf("db.ExecContext(create schema_version) > %w", err)
	}

	dir := path.Join("migrations", db.DriverName())
	entries, err := fs.ReadDir(schemas.Migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	applied, err := AppliedMigrations(ctx, db)
	if err != nil {
		return nil, err
	}
	done := make(map[int]bool, len(applied))
	for _, version := range applied {
		done[version] = true
	}

	var newlyApplied []int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return nil, err
		}
		if done[version] {
			continue
		}

		content, err := fs.ReadFile(schemas.Migrations, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("fs.ReadFile(%s) > %w", entry.Name(), err)
		}
		if err := applyMigration(ctx, db, version, string(content)); err != nil {
			return nil, err
		}
		slog.Default().Info("applied a migration",
			"driver", db.DriverName(),
			"version", version,
			"file", entry.Name(),
		)
		newlyApplied = append(newlyApplied, version)
	}
	return newlyApplied, nil
}

func applyMigration(ctx context.Context, db *sqlx.DB, version int, content string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx(migration %d) > %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, content); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("tx.ExecContext(migration %d) > %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("tx.ExecContext(record migration %d) > %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit(migration %d) > %w", version, err)
	}
	return nil
}

// AppliedMigrations returns the recorded migration versions in ascending order.
func AppliedMigrations(ctx context.Context, db *sqlx.DB) ([]int, error) {
	var versions []int
	if err := db.SelectContext(ctx, &versions, "SELECT version FROM schema_version ORDER BY version"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(schema_version) > %w", err)
	}
	return versions, nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parse migration version from %q > %w", filename, err)
	}
	return version, nil
}
