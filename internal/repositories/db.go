// Package repositories provides the data access layer. It owns the pooled
// MySQL connection and the fixed catalog of reporting queries issued
// against the platform database.
package repositories

import (
	"fmt"
	"log"
	"os"
	"time"

	"nisapoti-admin/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB

// DSN builds the MySQL connection string from the environment.
func DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.GetEnv("DB_USER", "root"),
		config.GetEnv("DB_PASSWORD", ""),
		config.GetEnv("DB_HOST", "127.0.0.1"),
		config.GetEnv("DB_PORT", "3306"),
		config.GetEnv("DB_NAME", "nisapoti"),
	)
}

// InitDB opens the MySQL connection and configures the pool. The platform
// owns the schema; this service never migrates the platform tables (see
// cmd/migrate for the dev schema).
func InitDB() {
	db, err := gorm.Open(mysql.Open(DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(config.GetIntEnv("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetMaxOpenConns(config.GetIntEnv("DB_MAX_OPEN_CONNS", 10))

	if lifetime, err := time.ParseDuration(config.GetEnv("DB_CONN_MAX_LIFETIME", "1h")); err == nil {
		sqlDB.SetConnMaxLifetime(lifetime)
	}
	if idle, err := time.ParseDuration(config.GetEnv("DB_CONN_MAX_IDLE_TIME", "30m")); err == nil {
		sqlDB.SetConnMaxIdleTime(idle)
	}

	// Ignore "record not found" noise; only log warnings and errors.
	db.Logger = logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to MySQL with connection pooling")
}

// queryErr wraps a driver failure into the uniform error shape surfaced by
// handlers. The original message rides along for logging; no retries.
func queryErr(op string, err error) error {
	return fmt.Errorf("query failed: %s: %w", op, err)
}
