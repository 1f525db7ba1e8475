package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production     bool   `env:"PRODUCTION" envDefault:"false"`
	Port           string `env:"PORT" envDefault:"8080"`
	Storage        string `env:"STORAGE" envDefault:"file"`
	StorageDir     string `env:"STORAGE_DIR" envDefault:"data"`
	StorageKey     string `env:"STORAGE_KEY" envDefault:"scheduler-events"`
	RedisUrl       string `env:"REDIS_URL" envDefault:"redis:6379"`
	PostgresUrl    string `env:"POSTGRES_URL" envDefault:""`
	StartHour      int    `env:"START_HOUR" envDefault:"7"`
	EndHour        int    `env:"END_HOUR" envDefault:"19"`
	SlotMinutes    int    `env:"SLOT_MINUTES" envDefault:"15"`
	IncludeWeekend bool   `env:"INCLUDE_WEEKEND" envDefault:"false"`
	ResourcePrefix string `env:"RESOURCE_PREFIX" envDefault:"R"`
	ResourceFrom   int    `env:"RESOURCE_FROM" envDefault:"2"`
	ResourceTo     int    `env:"RESOURCE_TO" envDefault:"25"`

	ResyncInterval time.Duration `env:"RESYNC_INTERVAL" envDefault:"1m"`
}

const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

// Storage names the persistence medium: file, memory, redis or postgres.
func Storage() string {
	return conf.Storage
}

func StorageDir() string {
	return conf.StorageDir
}

func StorageKey() string {
	return conf.StorageKey
}

func RedisURL() string {
	return conf.RedisUrl
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func StartHour() int {
	return conf.StartHour
}

func EndHour() int {
	return conf.EndHour
}

func SlotMinutes() int {
	return conf.SlotMinutes
}

func IncludeWeekend() bool {
	return conf.IncludeWeekend
}

func ResourcePrefix() string {
	return conf.ResourcePrefix
}

func ResourceFrom() int {
	return conf.ResourceFrom
}

func ResourceTo() int {
	return conf.ResourceTo
}

// ResyncInterval is how often a failed save is retried.
func ResyncInterval() time.Duration {
	return conf.ResyncInterval
}
