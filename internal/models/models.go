package models

import "time"

// Phase names one step of a breathing cycle.
type Phase string

const (
	PhaseInhale Phase = "inhale"
	PhaseHold   Phase = "hold"
	PhaseExhale Phase = "exhale"
	PhasePause  Phase = "pause"
)

// PhaseOrder is the fixed cycle order.
var PhaseOrder = [...]Phase{PhaseInhale, PhaseHold, PhaseExhale, PhasePause}

// BreathingPattern holds the duration of each phase in ticks (seconds).
type BreathingPattern struct {
	Inhale int `yaml:"inhale"`
	Hold   int `yaml:"hold"`
	Exhale int `yaml:"exhale"`
	Pause  int `yaml:"pause"`
}

// Duration returns the configured ticks for p, 0 for an unknown phase.
func (b BreathingPattern) Duration(p Phase) int {
	switch p {
	case PhaseInhale:
		return b.Inhale
	case PhaseHold:
		return b.Hold
	case PhaseExhale:
		return b.Exhale
	case PhasePause:
		return b.Pause
	}
	return 0
}

// CycleLength is the sum of all four durations.
func (b BreathingPattern) CycleLength() int {
	return b.Inhale + b.Hold + b.Exhale + b.Pause
}

// ExercisePreset is a named pattern with a target cycle count.
type ExercisePreset struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Pattern     BreathingPattern `yaml:"pattern"`
	Cycles      int              `yaml:"cycles"`
}

// TotalSeconds is the length of the whole exercise at one tick per second.
func (p ExercisePreset) TotalSeconds() int {
	return p.Pattern.CycleLength() * p.Cycles
}

// TimerState is a snapshot of a breathing session.
type TimerState struct {
	Preset          *ExercisePreset
	Phase           Phase
	Elapsed         int
	CompletedCycles int
	Running         bool
}

// Finished reports whether the target cycle count has been reached.
func (s TimerState) Finished() bool {
	return s.Preset != nil && s.CompletedCycles >= s.Preset.Cycles
}

// JournalMood is the coarse mood attached to a journal entry.
type JournalMood string

const (
	MoodHappy   JournalMood = "happy"
	MoodNeutral JournalMood = "neutral"
	MoodSad     JournalMood = "sad"
)

// Valid reports whether m is one of the known moods.
func (m JournalMood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad:
		return true
	}
	return false
}

// MoodEntry is one day of mood tracking. Scores run 1..10.
type MoodEntry struct {
	Date   string // YYYY-MM-DD
	Mood   int
	Stress int
	Energy int
	Notes  string
}

// JournalEntry is a free-text diary note.
type JournalEntry struct {
	ID        string
	Date      string
	Content   string
	Mood      JournalMood
	Tags      []string
	CreatedAt time.Time
}

// SessionRecord describes a breathing exercise that ran to completion.
type SessionRecord struct {
	ID         int64
	PresetID   string
	Cycles     int
	Seconds    int
	FinishedAt time.Time
}

// Counselor is a professional listed in the appointment directory.
type Counselor struct {
	ID             string
	Name           string
	Title          string
	Qualifications []string
	Specialties    []string
	Experience     int // years
	Rating         float64
	TotalSessions  int
	Location       string
	Languages      []string
	Bio            string
	Slots          []string
	Fee            int // rupees per session
}

// Mentor is a senior student volunteering for peer support.
type Mentor struct {
	ID            string
	Name          string
	Year          string
	College       string
	Specialties   []string
	Rating        float64
	TotalSessions int
	Availability  []string
	Bio           string
	Online        bool
}

// ProviderKind says who an appointment is with.
type ProviderKind string

const (
	KindCounselor ProviderKind = "counselor"
	KindMentor    ProviderKind = "mentor"
)

// SessionType is how an appointment takes place.
type SessionType string

const (
	SessionInPerson SessionType = "in-person"
	SessionVideo    SessionType = "video"
	SessionPhone    SessionType = "phone"
)

// SessionTypes lists the bookable session types in display order.
var SessionTypes = [...]SessionType{SessionInPerson, SessionVideo, SessionPhone}

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	for _, v := range SessionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// AppointmentStatus tracks an appointment's lifecycle.
type AppointmentStatus string

const (
	StatusUpcoming  AppointmentStatus = "upcoming"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked session with a counselor or mentor.
type Appointment struct {
	ID           string
	Kind         ProviderKind
	ProviderID   string
	ProviderName string
	Date         string // YYYY-MM-DD
	Time         string
	Type         SessionType
	Status       AppointmentStatus
	Concerns     string
	CreatedAt    time.Time
}
