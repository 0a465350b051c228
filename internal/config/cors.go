package config

import (
	"fmt"
	"net/http"
	"strings"
)

// CORSConfig holds cross-origin resource sharing configuration.
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call the API ("*" allows any).
	AllowedOrigins []string
	// AllowedMethods lists HTTP methods exposed to cross-origin callers.
	AllowedMethods []string
}

// LoadCORSConfigFromEnv loads CORS configuration from environment variables.
func LoadCORSConfigFromEnv() CORSConfig {
	return CORSConfig{
		AllowedOrigins: GetEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AllowedMethods: GetEnvList("CORS_ALLOWED_METHODS", []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		}),
	}
}

// Validate validates CORS configuration.
func (c CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	for _, method := range c.AllowedMethods {
		if strings.ToUpper(method) != method {
			return fmt.Errorf("invalid CORS method: %s (must be upper case)", method)
		}
	}
	return nil
}
