package cache

import (
	"context"
	"time"
)

// NullCache stores nothing; every lookup misses. The CLI uses it for
// --no-cache, and a [Runner] falls back to it when given no cache.
//
// [Runner]: github.com/gfret/fretboard/pkg/pipeline.Runner
type NullCache struct{}

var _ Cache = NullCache{}

// NewNullCache returns a cache that never stores artifacts.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
