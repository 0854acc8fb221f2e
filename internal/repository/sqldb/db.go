package sqldb

import (
	"alcyxob/workout-api/internal/config"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the relational database described by cfg, retrying up to
// cfg.ConnectRetries times while the server is not reachable yet.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.URI)
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.URI))
	default:
		return nil, fmt.Errorf("sqldb: unsupported driver %q", cfg.Driver)
	}

	attempts := cfg.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			if err = ping(db); err == nil {
				log.Printf("INFO: Connected to %s", cfg.Driver)
				return db, nil
			}
		}
		lastErr = err
		log.Printf("Connection attempt %d/%d failed: %v", i+1, attempts, err)
		if i+1 < attempts {
			time.Sleep(cfg.RetryInterval)
		}
	}
	return nil, fmt.Errorf("sqldb: could not connect after %d attempts: %w", attempts, lastErr)
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per
// connection unless the DSN asks for it.
func sqliteDSN(uri string) string {
	if strings.Contains(uri, "_foreign_keys=") || strings.Contains(uri, "_fk=") {
		return uri
	}
	if strings.Contains(uri, "?") {
		return uri + "&_foreign_keys=on"
	}
	return uri + "?_foreign_keys=on"
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the athletes and workout_sessions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&athleteRow{}, &workoutSessionRow{}); err != nil {
		return fmt.Errorf("sqldb: migration failed: %w", err)
	}
	log.Println("Database migration completed successfully")
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthChecker reports whether the database answers.
type HealthChecker struct {
	db *gorm.DB
}

func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
