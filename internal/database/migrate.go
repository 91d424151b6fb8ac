package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"survey-console/internal/config"
	"survey-console/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// RunMigrations applies every up migration in files to db.
// SQLite goes through golang-migrate; Oracle, which golang-migrate has no driver for,
// executes the .up.sql files in name order statement by statement.
func RunMigrations(ctx context.Context, db *sqlx.DB, driver string, files fs.FS) error {
	switch driver {
	case config.DriverSQLite:
		return migrateSQLite(db, files)
	case config.DriverOracle:
		return ExecMigrations(ctx, ExecFunc(func(ctx context.Context, query string) error {
			_, err := db.ExecContext(ctx, query)
			return err
		}), files)
	default:
		return fmt.Errorf("unsupported migration driver %q", driver)
	}
}

func migrateSQLite(db *sqlx.DB, files fs.FS) error {
	src, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}
	target, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, config.DriverSQLite, target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Get().Info("Migrations completed successfully", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// ExecFunc executes one SQL statement.
type ExecFunc func(ctx context.Context, query string) error

// ExecMigrations runs the .up.sql files of files in name order.
// Each file is split on ";" at line ends and executed one statement at a time.
func ExecMigrations(ctx context.Context, exec ExecFunc, files fs.FS) error {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(files, name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for i, stmt := range SplitStatements(string(content)) {
			if err := exec(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s (statement %d): %w", name, i+1, err)
			}
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("files", len(names)))
	return nil
}

// SplitStatements splits a script on semicolons that end a line and drops empty statements.
func SplitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			stmts = append(stmts, current.String())
			current.Reset()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
