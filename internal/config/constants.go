package config

import "time"

// Timer settings.
const (
	TickInterval   = time.Second
	DefaultPreset  = "478"
	CompanionDelay = time.Second
	OfflineDelay   = 500 * time.Millisecond
)

// Mood tracking bounds and windows.
const (
	MinMoodScore     = 1
	MaxMoodScore     = 10
	DefaultMoodScore = 5
	MoodAverageDays  = 7
	MoodHistoryLimit = 10
)

// Support bookings and mentor chat.
const (
	BookingDelay     = time.Second
	MentorReplyDelay = time.Second
	MaxBookingDays   = 30
	AppointmentLimit = 10
)

// Application settings.
const (
	AppName     = "umeed"
	EnvPrefix   = "UMEED_"
	LogFileName = "umeed.log"
	DateLayout  = "2006-01-02"
)
