package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	got := String()
	for _, want := range []string{"version: v1.2.3", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", tmpl)
	}
}
