package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. Call Init once before using it.
var Log *zap.Logger

func Init() {
	if Log != nil {
		return
	}
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	log, err := config.Build()
	if err != nil {
		// Logging is the one thing we cannot report a failure through.
		panic(err)
	}
	Log = log
}
