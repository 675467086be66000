package main

import "time"

type Config struct {
	PostgresURL     string        `env:"POSTGRES_URL,required=true"`
	RedisURL        string        `env:"REDIS_URL,required=true"`
	JWTSecret       string        `env:"JWT_SECRET,required=true"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,default=168h"`
	EmailCodeTTL    time.Duration `env:"EMAIL_CODE_TTL,default=10m"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	// DirectPublish makes mutations fan their events out immediately
	// instead of relying on the database trigger path. Enabling it while
	// the triggers are installed means subscribers see events twice.
	DirectPublish bool   `env:"DIRECT_PUBLISH"`
	LogLevel      string `env:"LOG_LEVEL,default=info"`
	Host          string `env:"HOST,default=localhost"`
	Port          int    `env:"PORT,default=8080"`
}
