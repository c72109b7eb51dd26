package version

import "testing"

func TestString(t *testing.T) {
	oldCommit, oldBuild := Commit, BuildTime
	defer func() { Commit, BuildTime = oldCommit, oldBuild }()

	Commit = "0123456789abcdef"
	BuildTime = "2026-10-15T09:00:00Z"

	want := "hostgen dev (commit: 0123456, built: 2026-10-15T09:00:00Z)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	Commit = "abc"
	if got := shortCommit(); got != "abc" {
		t.Errorf("shortCommit() = %q, want abc", got)
	}
}
