package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Path     string
}

func Connect(cfg Config) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.Path)
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
