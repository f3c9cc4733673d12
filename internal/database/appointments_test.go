package database

import (
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/umeed/internal/models"
)

func booking(provider, date, slot string) models.Appointment {
	return models.Appointment{
		Kind:         models.KindCounselor,
		ProviderID:   provider,
		ProviderName: "Dr. " + provider,
		Date:         date,
		Time:         slot,
		Type:         models.SessionVideo,
	}
}

func TestAddAppointment(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	in := booking("c1", "2024-01-18", "9:00 AM")
	in.Concerns = "exam stress"
	in.Status = models.StatusCompleted

	got, err := db.AddAppointment(ctx, in)
	if err != nil {
		t.Fatalf("AddAppointment failed: %v", err)
	}
	if got.ID == "" || got.Status != models.StatusUpcoming || !got.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected appointment: %+v", got)
	}

	list, err := db.Appointments(ctx, 10)
	if err != nil {
		t.Fatalf("Appointments failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != got.ID || list[0].Concerns != "exam stress" || list[0].Type != models.SessionVideo {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestAddAppointmentValidation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	noProvider := booking("", "2024-01-18", "9:00 AM")
	badKind := booking("c1", "2024-01-18", "9:00 AM")
	badKind.Kind = "doctor"
	badType := booking("c1", "2024-01-18", "9:00 AM")
	badType.Type = "carrier pigeon"

	tests := []struct {
		name string
		in   models.Appointment
		want error
	}{
		{"missing provider", noProvider, ErrInvalidAppointment},
		{"unknown kind", badKind, ErrInvalidAppointment},
		{"unknown session type", badType, ErrInvalidAppointment},
		{"missing slot", booking("c1", "2024-01-18", " "), ErrInvalidAppointment},
		{"bad date", booking("c1", "18-01-2024", "9:00 AM"), ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.AddAppointment(ctx, tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("AddAppointment error = %v, want %v", err, tt.want)
			}
			var opErr *OpError
			if !errors.As(err, &opErr) || opErr.Resource != "appointment" {
				t.Fatalf("expected *OpError for appointment, got %T", err)
			}
		})
	}
}

func TestAddAppointmentRejectsDoubleBooking(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	first, err := db.AddAppointment(ctx, booking("c1", "2024-01-18", "9:00 AM"))
	if err != nil {
		t.Fatalf("AddAppointment failed: %v", err)
	}
	if _, err := db.AddAppointment(ctx, booking("c1", "2024-01-18", "9:00 AM")); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("double booking error = %v, want ErrSlotTaken", err)
	}
	if _, err := db.AddAppointment(ctx, booking("c2", "2024-01-18", "9:00 AM")); err != nil {
		t.Fatalf("other provider same slot failed: %v", err)
	}

	if err := db.CancelAppointment(ctx, first.ID); err != nil {
		t.Fatalf("CancelAppointment failed: %v", err)
	}
	if _, err := db.AddAppointment(ctx, booking("c1", "2024-01-18", "9:00 AM")); err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	a, err := db.AddAppointment(ctx, booking("c1", "2024-01-18", "9:00 AM"))
	if err != nil {
		t.Fatalf("AddAppointment failed: %v", err)
	}
	if err := db.CancelAppointment(ctx, a.ID); err != nil {
		t.Fatalf("CancelAppointment failed: %v", err)
	}
	if err := db.CancelAppointment(ctx, a.ID); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("second cancel error = %v, want ErrAppointmentNotFound", err)
	}
	if err := db.CancelAppointment(ctx, "missing"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("missing cancel error = %v, want ErrAppointmentNotFound", err)
	}
	list, _ := db.Appointments(ctx, 10)
	if len(list) != 1 || list[0].Status != models.StatusCancelled {
		t.Fatalf("unexpected list after cancel: %+v", list)
	}
}

func TestAppointmentsOrder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for _, b := range []models.Appointment{
		booking("a", "2024-01-20", "9:00 AM"),
		booking("b", "2024-01-10", "9:00 AM"),
		booking("c", "2024-01-17", "9:00 AM"),
		booking("d", "2024-01-12", "9:00 AM"),
	} {
		a, err := db.AddAppointment(ctx, b)
		if err != nil {
			t.Fatalf("AddAppointment failed: %v", err)
		}
		if b.ProviderID == "b" || b.ProviderID == "d" {
			if err := db.CancelAppointment(ctx, a.ID); err != nil {
				t.Fatalf("CancelAppointment failed: %v", err)
			}
		}
	}

	list, err := db.Appointments(ctx, 10)
	if err != nil {
		t.Fatalf("Appointments failed: %v", err)
	}
	var got []string
	for _, a := range list {
		got = append(got, a.ProviderID)
	}
	want := []string{"c", "a", "d", "b"}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	limited, _ := db.Appointments(ctx, 1)
	if len(limited) != 1 || limited[0].ProviderID != "c" {
		t.Fatalf("limited list = %+v", limited)
	}
}
