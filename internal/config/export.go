package config

import "time"

type Export struct {
	Enabled    bool          `env:"ENABLED,expand" envDefault:"true"`
	ChromePath string        `env:"CHROME_PATH,expand"`
	Timeout    time.Duration `env:"TIMEOUT,expand" envDefault:"1m"`
	Headless   bool          `env:"HEADLESS,expand" envDefault:"true"`
}
