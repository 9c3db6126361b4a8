package config

import (
	"fmt"
	"strings"
	"time"

	"hotel-reservations/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the MySQL pool, applies migrations and optionally
// seeds demo rooms. The returned handle is passed to services explicitly.
func ConnectDatabase(cfg *Config, log *logrus.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(log, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormLogLevel(cfg.DBLogLevel),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.SeedRooms {
		if err := SeedRooms(db, log); err != nil {
			return nil, fmt.Errorf("seed rooms: %w", err)
		}
	}
	return db, nil
}

// Migrate creates missing tables, columns and indexes. Parent before child.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Reservation{},
	)
}

var demoRooms = []models.Room{
	{Number: "101", Type: "simple", Price: 60},
	{Number: "102", Type: "double", Price: 85},
	{Number: "201", Type: "double", Price: 90},
	{Number: "202", Type: "suite", Price: 150},
}

// SeedRooms inserts demo rooms into an empty rooms table.
func SeedRooms(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.WithField("rooms", count).Debug("rooms already seeded")
		return nil
	}

	rooms := make([]models.Room, len(demoRooms))
	copy(rooms, demoRooms)
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}
	log.WithField("rooms", len(rooms)).Info("rooms seeded")
	return nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
