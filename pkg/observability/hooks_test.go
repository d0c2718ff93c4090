package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Session hooks
	s := NoopSessionHooks{}
	s.OnOpen("id", "notes", nil)
	s.OnInteract("id", "navigate", "up", 1, nil)
	s.OnInteract("id", "new", "Bad", 0, errors.New("bad word"))
	s.OnRelease("id")

	// Persistence hooks
	p := NoopPersistenceHooks{}
	p.OnLoad("notes", 42, time.Millisecond, nil)
	p.OnSave("notes", time.Millisecond, errors.New("disk full"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}
	if _, ok := Persistence().(NoopPersistenceHooks); !ok {
		t.Error("Persistence() should return NoopPersistenceHooks by default")
	}

	// Set custom hooks
	customSession := &testSessionHooks{}
	SetSessionHooks(customSession)
	if Session() != customSession {
		t.Error("SetSessionHooks should set custom hooks")
	}

	customPersistence := &testPersistenceHooks{}
	SetPersistenceHooks(customPersistence)
	if Persistence() != customPersistence {
		t.Error("SetPersistenceHooks should set custom hooks")
	}

	Session().OnOpen("id", "notes", nil)
	if customSession.opens != 1 {
		t.Errorf("custom session hooks saw %d opens, want 1", customSession.opens)
	}

	// Reset and verify
	Reset()
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Reset() should restore NoopSessionHooks")
	}
	if _, ok := Persistence().(NoopPersistenceHooks); !ok {
		t.Error("Reset() should restore NoopPersistenceHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSessionHooks{}
	SetSessionHooks(custom)

	// Setting nil should be ignored
	SetSessionHooks(nil)

	if Session() != custom {
		t.Error("SetSessionHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSessionHooks struct {
	NoopSessionHooks
	opens int
}

func (h *testSessionHooks) OnOpen(string, string, error) { h.opens++ }

type testPersistenceHooks struct{ NoopPersistenceHooks }
