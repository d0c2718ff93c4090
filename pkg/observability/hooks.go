// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about editing sessions and document persistence.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the engine stays free of
// logging and metrics backends.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    observability.SetPersistenceHooks(&myPersistenceHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	n, err := store.Load(rp)
//	observability.Persistence().OnLoad(path, n, time.Since(start), err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from editing sessions. Sessions are
// identified by the id the engine assigns on open.
type SessionHooks interface {
	// OnOpen records a session opening path. err is set when the open failed.
	OnOpen(session, path string, err error)

	// OnInteract records one interaction: the state that handled word and
	// the number of reply words.
	OnInteract(session, state, word string, replies int, err error)

	// OnRelease records a session being released.
	OnRelease(session string)
}

// =============================================================================
// Persistence Hooks
// =============================================================================

// PersistenceHooks receives events from document loads and saves.
type PersistenceHooks interface {
	// OnLoad records a replayed document and the number of tokens fed.
	OnLoad(path string, tokens int, duration time.Duration, err error)

	// OnSave records an atomic save.
	OnSave(path string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnOpen(string, string, error)                  {}
func (NoopSessionHooks) OnInteract(string, string, string, int, error) {}
func (NoopSessionHooks) OnRelease(string)                              {}

// NoopPersistenceHooks is a no-op implementation of PersistenceHooks.
type NoopPersistenceHooks struct{}

func (NoopPersistenceHooks) OnLoad(string, int, time.Duration, error) {}
func (NoopPersistenceHooks) OnSave(string, time.Duration, error)      {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sessionHooks     SessionHooks     = NoopSessionHooks{}
	persistenceHooks PersistenceHooks = NoopPersistenceHooks{}
	hooksMu          sync.RWMutex
)

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before any session is opened.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetPersistenceHooks registers custom persistence hooks.
// This should be called once at application startup before any document is loaded.
func SetPersistenceHooks(h PersistenceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		persistenceHooks = h
	}
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Persistence returns the registered persistence hooks.
func Persistence() PersistenceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return persistenceHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sessionHooks = NoopSessionHooks{}
	persistenceHooks = NoopPersistenceHooks{}
}
