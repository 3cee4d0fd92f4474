package db

import (
	"errors"
	"fmt"
	"os"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the migrate drivers and the file source.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/healthtotech/healthbuddy/internal/models"
)

// ConnectAndMigrate opens the database selected by dsn and brings the
// schema up to date. With useMigrations the SQL files under ./migrations
// run via golang-migrate; otherwise gorm's AutoMigrate handles it, which
// is the sqlite dev default.
func ConnectAndMigrate(dsn string, useMigrations bool) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var gdb *gorm.DB
	var err error
	if IsPostgres(dsn) {
		// Postgres may still be starting when we are; retry a few times.
		for i := 0; i < 10; i++ {
			gdb, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			time.Sleep(2 * time.Second)
		}
	} else {
		gdb, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if pingErr := gdb.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if useMigrations {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range []interface{}{&models.HealthRecord{}, &models.Operator{}} {
			if migErr := gdb.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	for _, table := range []string{"health_records", "operators"} {
		if !gdb.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}
	return gdb, nil
}

// runSQLMigrations executes the files in ./migrations. sqlite paths need
// the sqlite3:// scheme prefix golang-migrate expects.
func runSQLMigrations(dsn string) error {
	target := dsn
	if !IsPostgres(dsn) {
		target = "sqlite3://" + dsn
	}
	m, err := migrate.New("file://migrations", target)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
