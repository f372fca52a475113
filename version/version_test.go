package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	saved := [3]string{Version, GitCommit, BuildDate}
	defer func() { Version, GitCommit, BuildDate = saved[0], saved[1], saved[2] }()

	Version = "dev"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("dev build: expected %q, got %q", "dev", got)
	}

	Version, GitCommit, BuildDate = "1.2.0", "abc123", "2026-10-19"
	expected := "1.2.0 (commit abc123, built 2026-10-19)"
	if got := GetFullVersion(); got != expected {
		t.Errorf("release build: expected %q, got %q", expected, got)
	}
	if got := GetVersion(); got != "1.2.0" {
		t.Errorf("GetVersion: expected %q, got %q", "1.2.0", got)
	}
}
