package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type Redis struct {
	Enabled     bool
	Addr        string
	CacheTTLSec int
}

type Config struct {
	Server Server
	DB     DB
	JWT    struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Redis Redis
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 7003)
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "coursehub")
	v.SetDefault("db.path", "coursehub.db")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.cache_ttl_sec", 300)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			Path:   v.GetString("db.path"),
		},
		Redis: Redis{
			Enabled:     v.GetBool("redis.enabled"),
			Addr:        v.GetString("redis.addr"),
			CacheTTLSec: v.GetInt("redis.cache_ttl_sec"),
		},
	}
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "coursehub"
	}
	cfg.JWT.ExpMin = v.GetInt("jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}
