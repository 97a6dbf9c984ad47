package ports

import "context"

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes command (program followed by its arguments) in dir and waits for it.
	// An empty dir runs the command in the process working directory.
	//
	// It returns the standard output, followed by a line break and the standard error
	// when the latter is non-empty. It returns an error if the command cannot be
	// started or exits abnormally.
	Run(ctx context.Context, dir string, command []string) (string, error)
}
