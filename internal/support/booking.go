package support

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/database"
	"github.com/akyairhashvil/umeed/internal/models"
)

var (
	ErrUnknownProvider = errors.New("unknown counselor or mentor")
	ErrInvalidSlot     = errors.New("time slot is not offered")
	ErrBookingWindow   = errors.New("date is outside the booking window")
	ErrInvalidType     = errors.New("unknown session type")
)

// Request is what a student fills in to book a session.
type Request struct {
	Kind       models.ProviderKind
	ProviderID string
	Date       string // YYYY-MM-DD
	Slot       string
	Type       models.SessionType
	Concerns   string
}

// Booker confirms a booking request.
//
//go:generate mockgen -source=booking.go -destination=supportmock/booker.go -package=supportmock
type Booker interface {
	Book(ctx context.Context, req Request) (models.Appointment, error)
}

// StoreBooker checks requests against the directory and records them.
type StoreBooker struct {
	Store database.AppointmentRepository
	Now   func() time.Time
}

// NewStoreBooker returns a booker that writes to store.
func NewStoreBooker(store database.AppointmentRepository) *StoreBooker {
	return &StoreBooker{Store: store, Now: time.Now}
}

// Book validates req and records it as an upcoming appointment. The date
// must fall between today and config.MaxBookingDays ahead.
func (b *StoreBooker) Book(ctx context.Context, req Request) (models.Appointment, error) {
	name, slots, err := provider(req.Kind, req.ProviderID)
	if err != nil {
		return models.Appointment{}, err
	}
	if !slices.Contains(slots, req.Slot) {
		return models.Appointment{}, fmt.Errorf("%w: %q", ErrInvalidSlot, req.Slot)
	}
	if !req.Type.Valid() {
		return models.Appointment{}, fmt.Errorf("%w: %q", ErrInvalidType, req.Type)
	}
	if err := b.checkDate(req.Date); err != nil {
		return models.Appointment{}, err
	}
	return b.Store.AddAppointment(ctx, models.Appointment{
		Kind:         req.Kind,
		ProviderID:   req.ProviderID,
		ProviderName: name,
		Date:         req.Date,
		Time:         req.Slot,
		Type:         req.Type,
		Concerns:     req.Concerns,
	})
}

func (b *StoreBooker) checkDate(date string) error {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	day, err := time.Parse(config.DateLayout, date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBookingWindow, date)
	}
	t := now()
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) || day.After(today.AddDate(0, 0, config.MaxBookingDays)) {
		return fmt.Errorf("%w: %s", ErrBookingWindow, date)
	}
	return nil
}

// provider returns the display name and bookable slots for a directory entry.
func provider(kind models.ProviderKind, id string) (string, []string, error) {
	switch kind {
	case models.KindCounselor:
		if c, ok := Counselor(id); ok {
			return c.Name, c.Slots, nil
		}
	case models.KindMentor:
		if m, ok := Mentor(id); ok {
			return m.Name, m.Availability, nil
		}
	}
	return "", nil, fmt.Errorf("%w: %s %q", ErrUnknownProvider, kind, id)
}

// DelayedBooker wraps a Booker with a fixed confirmation latency.
type DelayedBooker struct {
	Next  Booker
	Delay time.Duration
}

// Book waits for Delay, then defers to Next. Cancelling ctx aborts the wait.
func (d DelayedBooker) Book(ctx context.Context, req Request) (models.Appointment, error) {
	if d.Delay > 0 {
		t := time.NewTimer(d.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.Appointment{}, ctx.Err()
		case <-t.C:
		}
	}
	return d.Next.Book(ctx, req)
}
