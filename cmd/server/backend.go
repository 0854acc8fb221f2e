package main

import (
	"alcyxob/workout-api/internal/config"
	"alcyxob/workout-api/internal/repository"
	"alcyxob/workout-api/internal/repository/mongo"
	"alcyxob/workout-api/internal/repository/sqldb"
	"context"
	"fmt"
	"log"
	"time"
)

// backend bundles the repositories of the configured storage driver.
type backend struct {
	sessions repository.WorkoutSessionRepository
	athletes repository.AthleteRepository
	pinger   repository.Pinger
	migrate  func(ctx context.Context) error
	close    func() error
}

// openBackend connects to the database selected by cfg.Driver.
func openBackend(cfg config.DatabaseConfig) (*backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres, config.DriverSQLite:
		db, err := sqldb.Open(cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			sessions: sqldb.NewWorkoutSessionRepository(db),
			athletes: sqldb.NewAthleteRepository(db),
			pinger:   sqldb.NewHealthChecker(db),
			migrate:  func(context.Context) error { return sqldb.Migrate(db) },
			close:    func() error { return sqldb.Close(db) },
		}, nil

	case config.DriverMongo:
		client, err := mongo.ConnectDB(cfg.URI, cfg.ConnectRetries, cfg.RetryInterval)
		if err != nil {
			return nil, err
		}
		appDB := client.Database(cfg.Name)
		log.Println("Database connection established.")
		return &backend{
			sessions: mongo.NewMongoWorkoutSessionRepository(appDB),
			athletes: mongo.NewMongoAthleteRepository(appDB),
			pinger:   mongo.NewHealthChecker(client),
			migrate: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, 1*time.Minute)
				defer cancel()
				return mongo.EnsureIndexes(ctx, appDB)
			},
			close: func() error {
				log.Println("Disconnecting MongoDB...")
				return mongo.DisconnectDB(client)
			},
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}
