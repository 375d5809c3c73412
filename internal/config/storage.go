package config

import "time"

type Storage struct {
	URI      string `env:"URI,expand" envDefault:"sqlite://data.sqlite"`
	SeedFile string `env:"SEED_FILE,expand"`
	Cache    Cache  `envPrefix:"CACHE_"`
}

type Cache struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"500"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"5m"`
}
