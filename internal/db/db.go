package db

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pathfinder-backend-V1.0/internal/config"
)

var (
	conn *gorm.DB
	once sync.Once
)

// InitDBFromConfig opens the Postgres connection described by the XML config
// and applies the pool settings.
func InitDBFromConfig(cfg *config.APIConfig) {
	once.Do(func() {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
			cfg.DB.Host,
			cfg.DB.Username,
			cfg.DB.Password.Value,
			cfg.DB.Names.Pathfinder,
			cfg.DB.Port,
			cfg.DB.SSLMode,
			cfg.Context.TimeZone,
		)

		gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatalf("failed to get database handle: %v", err)
		}
		sqlDB.SetMaxOpenConns(cfg.DB.Pool.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DB.Pool.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.DB.Pool.ConnMaxLifetime) * time.Second)

		conn = gormDB
	})
}

// GetDB returns the shared connection.
func GetDB() *gorm.DB {
	return conn
}
