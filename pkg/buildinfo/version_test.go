package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") || !strings.Contains(got, "commit: abc123") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); got != "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-01" {
		t.Errorf("String() = %q", got)
	}
}
