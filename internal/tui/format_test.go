package tui

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{2 * time.Minute, "2m"},
		{76 * time.Second, "1m 16s"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
		{3 * time.Hour, "3h"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPattern(t *testing.T) {
	if got := FormatPattern(4, 7, 8, 0); got != "4-7-8" {
		t.Fatalf("FormatPattern = %q", got)
	}
	if got := FormatPattern(4, 4, 4, 4); got != "4-4-4-4" {
		t.Fatalf("FormatPattern = %q", got)
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(7, "Good"); got != "7/10 - Good" {
		t.Fatalf("FormatScore = %q", got)
	}
	if got := FormatScore(3, ""); got != "3/10" {
		t.Fatalf("FormatScore = %q", got)
	}
}

func TestThemeByNameFallback(t *testing.T) {
	if got := ThemeByName("dracula").Name; got != "Dracula" {
		t.Fatalf("expected Dracula, got %q", got)
	}
	if got := ThemeByName("neon").Name; got != "Default" {
		t.Fatalf("expected default fallback, got %q", got)
	}
}

func TestVersionLabel(t *testing.T) {
	oldCommit, oldBuild := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = oldCommit, oldBuild })
	if got := versionLabel(); got != AppVersion {
		t.Fatalf("versionLabel = %q", got)
	}
	GitCommit, BuildTime = "abc123", "today"
	if got := versionLabel(); got != AppVersion+" (abc123 today)" {
		t.Fatalf("versionLabel = %q", got)
	}
}
