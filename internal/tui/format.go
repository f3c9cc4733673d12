package tui

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatPattern renders a pattern as "4-7-8" or "4-4-4-4" when a pause is set.
func FormatPattern(inhale, hold, exhale, pause int) string {
	if pause == 0 {
		return fmt.Sprintf("%d-%d-%d", inhale, hold, exhale)
	}
	return fmt.Sprintf("%d-%d-%d-%d", inhale, hold, exhale, pause)
}

// FormatScore renders a 1..10 score with its label.
func FormatScore(v int, label string) string {
	if label == "" {
		return fmt.Sprintf("%d/10", v)
	}
	return fmt.Sprintf("%d/10 - %s", v, label)
}
