package ports

import "context"

// CacheStore is the gateway to the backing blob store that physically
// restores and saves path sets under keys. Transport, archive format and
// authentication are owned by the implementation.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Restore looks up the primary key and then each restore-chain prefix in
	// order, restoring the first match onto disk. It returns the matched key,
	// or the empty string when nothing matched.
	Restore(ctx context.Context, paths []string, primaryKey string, restoreChain []string) (string, error)

	// Save persists the given paths under the key and returns an identifier
	// for the stored entry.
	Save(ctx context.Context, paths []string, key string) (string, error)
}
