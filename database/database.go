// database.go - Handles database connection and setup

package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-shop-backend/config"
	"go-shop-backend/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured driver and runs migrations
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver != "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite file with foreign keys enabled.
// Tests use it directly with a path under t.TempDir().
func OpenSQLite(path string) (*gorm.DB, error) {
	return Open(&config.Config{DBDriver: "sqlite", DBPath: path})
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "", "sqlite":
		return sqlite.Open(sqliteDSN(cfg.DBPath)), nil
	case "postgres":
		if cfg.DBDSN == "" {
			return nil, errors.New("DB_DSN is required for postgres")
		}
		return postgres.Open(cfg.DBDSN), nil
	case "mysql":
		if cfg.DBDSN == "" {
			return nil, errors.New("DB_DSN is required for mysql")
		}
		return mysql.Open(cfg.DBDSN), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// Migrate creates or updates the tables; owners come before products
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Seller{},
		&models.Customer{},
		&models.Product{},
	)
}

// SeedAdmin creates the configured bootstrap admin when the admins table is
// empty. hash is the already computed password digest.
func SeedAdmin(db *gorm.DB, username, phoneNumber, hash string, log *zap.Logger) error {
	if username == "" || hash == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.Admin{Username: username, Password: hash, PhoneNumber: phoneNumber}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info("bootstrap admin created", zap.String("username", username))
	return nil
}
