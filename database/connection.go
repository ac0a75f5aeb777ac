// database/connection.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL/MariaDB driver

	"github.com/gewnthar/flightqa/apperrors"
	"github.com/gewnthar/flightqa/config"
)

var DB *sql.DB

var errNotInitialized = apperrors.Configuration("database connection is not initialized", nil)

// DSN builds the driver connection string for cfg.
func DSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

// InitDB initializes the database connection pool.
func InitDB(ctx context.Context, cfg config.DatabaseConfig) error {
	var err error
	DB, err = sql.Open("mysql", DSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err := DB.PingContext(ctx); err != nil {
		DB.Close()
		DB = nil
		return fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("connected to database", "component", "database", "host", cfg.Host, "dbname", cfg.DBName)
	return nil
}

// CloseDB closes the database connection pool.
func CloseDB() {
	if DB != nil {
		DB.Close()
		DB = nil
		slog.Info("database connection closed", "component", "database")
	}
}

// Enabled reports whether a connection pool has been initialized.
func Enabled() bool {
	return DB != nil
}
