package config

// Config holds server-level configuration loaded from the environment
type Config struct {
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	Environment string
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
