// Package ports defines the core interfaces for the application.
package ports

import "time"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// Output logs one line written by an external command. prefix names the
	// project the command ran in.
	Output(prefix, line string, stderr bool)

	// Step reports a finished unit of work, failed when err is non-nil.
	Step(name string, elapsed time.Duration, err error)
}
