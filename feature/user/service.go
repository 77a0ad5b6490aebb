package user

import (
	"context"
	"errors"
	"time"

	"imagine-api/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the feature was built without a connection.
var ErrNoDatabase = errors.New("no database attached")

// Status is the database health as seen by the user router.
type Status struct {
	Database        string `json:"database"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
}

// Service reports on the database the user router depends on.
type Service struct {
	db          *gorm.DB
	logger      *zap.Logger
	pingTimeout time.Duration
}

// NewService creates a new user service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, pingTimeout: 2 * time.Second}
}

// Status pings the database and returns pool statistics. The returned
// Status is filled in even when the ping fails.
func (s *Service) Status(ctx context.Context) (Status, error) {
	if s.db == nil {
		return Status{Database: "down"}, ErrNoDatabase
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return Status{Database: "down"}, err
	}

	stats := sqlDB.Stats()
	st := Status{
		Database:        "up",
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
	}

	if err := database.Ping(ctx, s.db, s.pingTimeout); err != nil {
		st.Database = "down"
		return st, err
	}
	return st, nil
}
