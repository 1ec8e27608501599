package session

import "context"

// KV is the persistent key-value storage backing the session store.
// Implementations: SQLiteKV (production), MemoryKV (tests).
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
