package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if OfflineDelay >= CompanionDelay {
		t.Fatalf("offline replies should be faster than online ones")
	}
	if MinMoodScore >= MaxMoodScore {
		t.Fatalf("mood bounds inverted")
	}
	if DefaultMoodScore < MinMoodScore || DefaultMoodScore > MaxMoodScore {
		t.Fatalf("DefaultMoodScore out of range")
	}
	if MaxBookingDays < 1 || AppointmentLimit < 1 {
		t.Fatalf("booking window and appointment limit must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if MinProgressWidth > ProgressBarWidth {
		t.Fatalf("MinProgressWidth exceeds ProgressBarWidth")
	}
}
