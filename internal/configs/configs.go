/*
Package configs is responsible for loading and parsing the application's
configuration settings.

Configuration comes from environment variables with development-friendly
defaults. The base API address is selected once at startup: production
targets the deployed backend origin, development targets the local proxy
(see cmd/devproxy). It is never re-evaluated per call.
*/
package configs

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// ProductionBaseURL is the deployed marketplace backend origin.
	ProductionBaseURL = "https://ukulima-backend-ionm.onrender.com"

	// DevelopmentBaseURL is the default local proxy address used in
	// development, mirroring the browser client's "/api" dev prefix.
	DevelopmentBaseURL = "http://localhost:8080/api"
)

// AppConfig contains the configuration for the command-line client.
type AppConfig struct {
	// Environment is either "development" or "production".
	Environment string

	// APIBaseURL is the base address every request targets.
	APIBaseURL string

	// TokenFile is the path of the single file holding the session token.
	TokenFile string
}

// LoadConfig reads the client configuration from environment variables.
// UKULIMA_API_URL overrides the environment-selected base address, and
// UKULIMA_TOKEN_FILE overrides the default token location under the
// user config directory.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Environment != "development" && cfg.Environment != "production" {
		return nil, fmt.Errorf("unrecognized ENVIRONMENT %q, expected development or production", cfg.Environment)
	}

	cfg.APIBaseURL = os.Getenv("UKULIMA_API_URL")
	if cfg.APIBaseURL == "" {
		if cfg.Environment == "production" {
			cfg.APIBaseURL = ProductionBaseURL
		} else {
			cfg.APIBaseURL = DevelopmentBaseURL
		}
	}
	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid UKULIMA_API_URL: %w", err)
	}

	cfg.TokenFile = os.Getenv("UKULIMA_TOKEN_FILE")
	if cfg.TokenFile == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve user config dir for token file: %w", err)
		}
		cfg.TokenFile = filepath.Join(configDir, "ukulima", "token")
	}

	return cfg, nil
}

// ProxyConfig contains the configuration for the development proxy.
type ProxyConfig struct {
	// Port the proxy listens on.
	Port int

	// UpstreamURL is the backend origin requests are forwarded to.
	UpstreamURL string

	// AllowedOrigins lists browser origins permitted by CORS. Empty
	// means all origins, which is acceptable for a local dev tool.
	AllowedOrigins []string
}

// LoadProxyConfig reads the development proxy configuration from
// environment variables, validating the port range and upstream URL.
func LoadProxyConfig() (*ProxyConfig, error) {
	cfg := &ProxyConfig{}

	portStr := os.Getenv("PROXY_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROXY_PORT environment variable: %w", err)
	}
	if port < 1024 || port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", port, 1024, 65535)
	}
	cfg.Port = port

	cfg.UpstreamURL = os.Getenv("UPSTREAM_URL")
	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = ProductionBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.UpstreamURL); err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_URL: %w", err)
	}

	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	return cfg, nil
}
