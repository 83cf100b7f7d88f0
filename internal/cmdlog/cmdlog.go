package cmdlog

import (
	"time"

	"collabhub/internal/logging"
	"collabhub/internal/metrics"
)

// Run executes one CLI command, counting and logging its outcome.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	start := time.Now()
	err := f()
	took := time.Since(start).Milliseconds()
	if err != nil {
		metrics.IncCommandError(cmd)
		logging.Error(cmd+"_error", map[string]any{"error": err.Error(), "ms": took})
	} else {
		logging.Info(cmd+"_ok", map[string]any{"ms": took})
	}
	return err
}
