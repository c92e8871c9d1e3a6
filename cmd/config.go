package cmd

// Config carries all environment-driven settings of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StreamKeepAliveSeconds is the period between keep-alive comments
	// on open streams. Defaults to 25 when unset.
	StreamKeepAliveSeconds string

	// StreamDeterministicDelayMs is the fixed delay between lifecycle
	// steps in deterministic mode. Defaults to 50 when unset.
	StreamDeterministicDelayMs string
}
