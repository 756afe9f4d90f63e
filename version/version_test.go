package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	defer func() { Version, GitCommit = oldVersion, oldCommit }()

	Version, GitCommit = "dev", "0123456789abcdef"
	if got := GetFullVersion(); got != "dev" {
		t.Errorf("GetFullVersion() = %q, want %q", got, "dev")
	}

	Version = "1.2.0"
	if got := GetFullVersion(); got != "1.2.0 (0123456)" {
		t.Errorf("GetFullVersion() = %q, want %q", got, "1.2.0 (0123456)")
	}

	GitCommit = "unknown"
	if got := GetFullVersion(); got != "1.2.0" {
		t.Errorf("GetFullVersion() = %q, want %q", got, "1.2.0")
	}
}
