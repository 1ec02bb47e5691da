package config

import "go.uber.org/zap"

// NewLogger builds the application logger. Production config (JSON,
// info level) everywhere except dev, where the human-readable console
// encoder is friendlier.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "dev" || env == "test" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
