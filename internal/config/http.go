package config

import "time"

type HTTP struct {
	BaseURL    string    `env:"BASE_URL,expand" envDefault:"/"`
	Address    string    `env:"ADDRESS,expand" envDefault:":3000"`
	SessionKey string    `env:"SESSION_KEY,expand"`
	BasicAuth  BasicAuth `envPrefix:"BASIC_AUTH_"`
	CORS       CORS      `envPrefix:"CORS_"`
	RateLimit  RateLimit `envPrefix:"RATE_LIMIT_"`
}

// BasicAuth protects every route when both credentials are set. The password
// may be a bcrypt hash, hence not expanded.
type BasicAuth struct {
	Username string `env:"USERNAME,expand"`
	Password string `env:"PASSWORD"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,expand" envDefault:"*" envSeparator:","`
}

type RateLimit struct {
	Enabled   bool          `env:"ENABLED,expand" envDefault:"true"`
	Interval  time.Duration `env:"INTERVAL,expand" envDefault:"100ms"`
	Burst     int           `env:"BURST,expand" envDefault:"20"`
	CacheSize int           `env:"CACHE_SIZE,expand" envDefault:"1000"`
	CacheTTL  time.Duration `env:"CACHE_TTL,expand" envDefault:"10m"`
	// TrustHeaders identifies clients by X-Forwarded-For when behind a proxy.
	TrustHeaders bool `env:"TRUST_HEADERS,expand" envDefault:"false"`
}
