package cmd

import (
	"testing"

	"go.uber.org/zap"
)

func TestSyncLoggerBeforeInitialization(t *testing.T) {
	logger = nil
	syncLogger() // must not panic
}

func TestSyncLoggerFlushesLogger(t *testing.T) {
	logger = zap.NewNop()
	defer func() { logger = nil }()
	syncLogger()
}
