package server

import (
	"fmt"

	"imagine-api/core/middleware/origin"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" env:"PORT" default:"4000"`
	// Mode is the runtime mode; "development" admits every origin.
	Mode string `mapstructure:"mode" env:"NODE_ENV" default:""`
	// FrontendURL is an additional allow-listed origin.
	FrontendURL string `mapstructure:"frontend_url" env:"FRONTEND_URL" default:""`
	// BodyLimit is the maximum request body size in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"4194304"`
	// JSONLimit is the maximum JSON request body size in bytes.
	JSONLimit int `mapstructure:"json_limit" default:"102400"`
}

// RuntimeMode is the process-wide environment flag.
type RuntimeMode string

// ModeDevelopment enables the origin gate bypass.
const ModeDevelopment RuntimeMode = "development"

// IsDevelopment reports whether the mode is exactly "development".
func (m RuntimeMode) IsDevelopment() bool {
	return m == ModeDevelopment
}

// DefaultOrigins are the frontends admitted in every mode.
var DefaultOrigins = []string{
	"http://localhost:3000",        // React dev server
	"http://localhost:80",          // Docker frontend
	"http://localhost",             // Docker frontend, implicit port
	"http://13.62.100.132",         // EC2 frontend
	"http://13.62.100.132:80",      // EC2 frontend, explicit port
	"https://imaginexx.vercel.app", // Production frontend
}

// Settings is the immutable server configuration built once at startup.
type Settings struct {
	Port      int
	Mode      RuntimeMode
	AllowList origin.AllowList
	BodyLimit int
	JSONLimit int
}

// Settings validates the raw configuration and freezes it.
func (c Config) Settings() (Settings, error) {
	if c.Port <= 0 || c.Port > 65535 {
		return Settings{}, fmt.Errorf("invalid port %d", c.Port)
	}

	origins := make([]string, 0, len(DefaultOrigins)+1)
	origins = append(origins, DefaultOrigins...)
	origins = append(origins, c.FrontendURL)

	return Settings{
		Port:      c.Port,
		Mode:      RuntimeMode(c.Mode),
		AllowList: origin.NewAllowList(origins...),
		BodyLimit: c.BodyLimit,
		JSONLimit: c.JSONLimit,
	}, nil
}

// OriginPolicy returns the policy the origin gate evaluates against.
func (s Settings) OriginPolicy() origin.Policy {
	return origin.Policy{
		AllowList:   s.AllowList,
		Development: s.Mode.IsDevelopment(),
	}
}

// Addr returns the listen address for the configured port.
func (s Settings) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
