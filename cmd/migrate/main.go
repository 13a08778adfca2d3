package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"finboard/internal/config"
	"finboard/internal/database"
	"finboard/internal/logger"
	"finboard/internal/services"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|down|version|purge-sessions> [N]")
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	command := os.Args[1]
	if command == "purge-sessions" {
		return purgeSessions(dbConfig)
	}

	if dbConfig.Driver != database.DriverPostgres {
		return fmt.Errorf("%s requires DB_DRIVER=postgres; sqlite is auto-migrated on startup", command)
	}

	m, err := migrate.New("file://migrations", dbConfig.MigrateURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")

	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid step count %q", os.Args[2])
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	default:
		return fmt.Errorf("unknown command: %s (use up, down, version or purge-sessions)", command)
	}

	return nil
}

// purgeSessions deletes every expired session.
func purgeSessions(dbConfig *database.Config) error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	sessions := services.NewSessionService(dbManager.DB(), services.SessionOptions{
		Secret:    []byte(appConfig.SessionSecret),
		ExpiresIn: appConfig.SessionExpiresIn,
		Now:       time.Now,
	})
	purged, err := sessions.DeleteExpiredSessions("")
	if err != nil {
		return fmt.Errorf("failed to purge sessions: %w", err)
	}
	logger.Get().Infof("Purged %d expired session(s)", purged)
	return nil
}
