package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of an incoming request body in megabytes.
	// Uploads beyond this limit are rejected with 413.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"25"`
}

const defaultBodyLimitMB = 25

// BodyLimit returns the request body cap in bytes.
// Non-positive configured values fall back to the default.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = defaultBodyLimitMB
	}
	return mb * 1024 * 1024
}
