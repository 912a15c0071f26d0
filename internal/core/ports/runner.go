package ports

import "context"

// CommandRunner executes a short-lived external command and captures its
// standard output, trimmed of surrounding whitespace. It is the boundary
// behind which per-ecosystem cache-directory probes run.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}
