package config

import "go.uber.org/zap"

// Logger is the process-wide structured logger. It defaults to a no-op
// logger so packages can log unconditionally; main swaps in the real one.
var Logger = zap.NewNop()

// InitLogger installs the production logger.
func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = l
}
