package kit

import "go.uber.org/zap"

// NewLogger builds a service-tagged logger. The development environment
// gets the console encoder at debug level, everything else the production
// JSON config.
func NewLogger(service, env string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.InitialFields = map[string]any{"service": service}

	l, _ := cfg.Build()
	return l
}
