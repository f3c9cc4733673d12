package database

import (
	"context"

	"github.com/akyairhashvil/umeed/internal/models"
)

// MoodRepository defines mood-tracking operations.
type MoodRepository interface {
	SaveMood(ctx context.Context, entry models.MoodEntry) error
	RecentMoods(ctx context.Context, limit int) ([]models.MoodEntry, error)
	AverageMood(ctx context.Context, days int) (float64, error)
}

// JournalRepository defines diary operations.
type JournalRepository interface {
	AddJournalEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	JournalEntries(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

// SessionRepository records finished breathing exercises.
type SessionRepository interface {
	RecordSession(ctx context.Context, rec models.SessionRecord) error
	SessionStats(ctx context.Context) (SessionStats, error)
}

// AppointmentRepository stores counselor and mentor bookings.
type AppointmentRepository interface {
	AddAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error)
	Appointments(ctx context.Context, limit int) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	MoodRepository
	JournalRepository
	SessionRepository
	AppointmentRepository
}

var _ Repository = (*Database)(nil)
