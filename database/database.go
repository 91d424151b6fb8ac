// Package database holds the SQL schema for every supported dialect.
package database

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed migrations
var migrations embed.FS

// Migrations returns the migration files for driver ("oracle" or "sqlite").
func Migrations(driver string) (fs.FS, error) {
	switch driver {
	case "oracle", "sqlite":
		return fs.Sub(migrations, "migrations/"+driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
