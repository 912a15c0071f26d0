package ports

import "go.cachet.dev/cachet/internal/core/domain"

// StateStore persists the lifecycle handoff record between the restore and
// save phases of one pipeline run.
//
//go:generate go run go.uber.org/mock/mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// Put stores the state under the run key, replacing any previous record.
	Put(runKey string, state domain.LifecycleState) error

	// Take retrieves and removes the state for the run key.
	// Returns nil, nil if not found.
	Take(runKey string) (*domain.LifecycleState, error)
}
