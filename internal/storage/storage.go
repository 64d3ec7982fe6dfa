// Package storage provides the string key-value persistence adapters the
// progress store writes its document through.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Engine names accepted by NewByEngine.
const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
	EngineMemory = "memory"
)

// ErrUnsupportedEngine is returned by NewByEngine for an unknown engine name.
var ErrUnsupportedEngine = errors.New("unsupported storage engine")

// KV is a synchronous string key-value store.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	Close() error
}

// NewByEngine opens the store for the named engine. An empty engine selects
// SQLite. The memory engine ignores path.
func NewByEngine(engine, path string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return OpenSQLite(path)
	case EngineJSON:
		return OpenJSONFile(path)
	case EngineMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, engine)
	}
}
