package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"pocketledger/pkg/utils"
)

// ConnectDb opens the process-wide connection pool and checks that the
// server answers before any request is accepted.
func ConnectDb(ctx context.Context, dsn string) (*sql.DB, error) {
	utils.Logger.Info("Connecting to MySQL...")

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	utils.Logger.Info("Connected to MySQL")
	return db, nil
}
