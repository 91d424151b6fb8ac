package database

import (
	"context"
	"fmt"
	"time"

	"survey-console/internal/config"
	"survey-console/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registers "oracle"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver, registers "sqlite"
)

func init() {
	// Placeholder styles of drivers sqlx does not know by name.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Connect opens the database configured in cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DB.Driver, err)
	}

	if cfg.DB.Driver == config.DriverSQLite {
		// single writer
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
		}
	} else {
		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DB.Driver, err)
	}

	logger.Get().Info("Connected to database", zap.String("driver", cfg.DB.Driver))
	return db, nil
}
