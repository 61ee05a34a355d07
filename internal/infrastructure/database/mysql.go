package database

import (
	"log"
	"time"

	"github.com/johnzhangfit/verttracker/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMySQLConnection opens the database and migrates the schema. Startup is
// the only place allowed to die on a storage error.
func NewMySQLConnection(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Fatal: cannot connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.JumpRecord{}); err != nil {
		log.Fatalf("Fatal: database migration failed: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}
