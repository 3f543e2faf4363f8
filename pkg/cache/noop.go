package cache

import (
	"context"
	"time"
)

// Noop satisfies Cache without storing anything. Used when Redis is not
// configured; every Get is a miss and every write succeeds.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (n *Noop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (n *Noop) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (n *Noop) DeletePattern(ctx context.Context, pattern string) error {
	return nil
}

func (n *Noop) Ping(ctx context.Context) error {
	return nil
}
