package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"tahfidz/config"
)

// Open creates the single store handle shared by every handler. The handle is
// handed to the router via the gin context; no package-level connection exists.
func Open(cfg *config.Config) (*sql.DB, error) {
	dsn := cfg.DBPath
	if cfg.DBDriver == "mysql" {
		var err error
		dsn, err = mysqlDSN(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL: %v", err)
		}
	}

	database, err := sql.Open(cfg.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if cfg.DBDriver == "sqlite3" {
		// SQLite serializes writes; a single connection avoids SQLITE_BUSY.
		database.SetMaxOpenConns(1)
	} else {
		database.SetMaxOpenConns(10)
		database.SetMaxIdleConns(5)
		database.SetConnMaxLifetime(time.Minute * 3)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	return database, nil
}

// mysqlDSN normalizes the configured DSN so DATETIME columns come back as
// time.Time, matching what the SQLite driver produces.
func mysqlDSN(raw string) (string, error) {
	dbConfig, err := mysql.ParseDSN(raw)
	if err != nil {
		return "", err
	}
	dbConfig.ParseTime = true
	dbConfig.AllowNativePasswords = true
	return dbConfig.FormatDSN(), nil
}
