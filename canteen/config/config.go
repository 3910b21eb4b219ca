package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/akoskissak/student-canteen/pkg/circuit_breaker"
	"github.com/akoskissak/student-canteen/pkg/kafka"
	"github.com/akoskissak/student-canteen/pkg/logger"
	"github.com/akoskissak/student-canteen/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READTIMEOUT" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITETIMEOUT"`
}

type Store struct {
	// Driver is "memory" or "postgres".
	Driver string `yaml:"driver" envconfig:"STORE_DRIVER" default:"memory"`
}

type Config struct {
	Server   HTTPServer             `yaml:"server"`
	Store    Store                  `yaml:"store"`
	Database postgres.DB            `yaml:"db"`
	Kafka    kafka.Config           `yaml:"kafka"`
	Breaker  circuit_breaker.Config `yaml:"breaker"`
	Log      logger.Log             `yaml:"log"`
	TimeZone string                 `yaml:"timezone" envconfig:"TIMEZONE" default:"UTC"`
}

// Location resolves TimeZone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
