// Package database handles the database connection the service requires
// before it accepts traffic.
//
// It wraps GORM and supports three drivers selected by DATABASE_DRIVER:
// mysql (default), postgres (pgx) and sqlite (used by tests with ":memory:").
//
// Connect opens the pool, applies pool limits and pings within
// DATABASE_TIMEOUT_SECONDS. It never retries; the startup sequencer treats
// any error as fatal.
//
// # Usage
//
//	db, err := database.Connect(ctx, cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer database.Close(db)
package database
