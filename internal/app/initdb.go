package app

import (
	"fmt"
	"path"
	"time"

	"github.com/workshoplabs/repairtrack/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	loglevel := logger.Error
	if cfg.Debug {
		loglevel = logger.Info
	}
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(loglevel),
	}

	var dialector gorm.Dialector
	switch cfg.Type {
	case "sqlite":
		dbfile := cfg.Name
		if dbfile == "" || dbfile == "memory" {
			dbfile = ":memory:"
		} else {
			dbfile = path.Join(workdir, "data", dbfile+".db")
		}
		dialector = sqlite.Open(dbfile)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=%s",
			cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port, time.Local.String())
		dialector = postgres.Open(dsn)
	}

	database, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		zap.S().Panicf("failed to connect %s database: %v", cfg.Type, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		zap.S().Panicf("failed to acquire sql connection: %v", err)
	}
	if cfg.Type == "sqlite" {
		// in-memory sqlite keeps one database per connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.IdleConn)
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return database
}
