package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// CORS holds cross-origin request configuration.
	CORS CORSConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// EnvFile is an optional dotenv file read before the environment is parsed.
	EnvFile string
	// MigrateOnStart applies pending schema migrations before serving.
	MigrateOnStart bool
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:         LoadServerConfigFromEnv(),
		Logger:         LoadLoggerConfigFromEnv(),
		CORS:           LoadCORSConfigFromEnv(),
		GinMode:        GetEnv("GIN_MODE", "release"),
		EnvFile:        GetEnv("ENV_FILE", ".env"),
		MigrateOnStart: GetEnvBool("MIGRATE_ON_START", true),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.CORS.Validate(); err != nil {
		return fmt.Errorf("cors config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
