package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/google/uuid"
)

// AddAppointment books a as upcoming. A provider can hold only one upcoming
// appointment per date and time.
func (d *Database) AddAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	if strings.TrimSpace(a.ProviderID) == "" || strings.TrimSpace(a.Time) == "" ||
		(a.Kind != models.KindCounselor && a.Kind != models.KindMentor) || !a.Type.Valid() {
		return models.Appointment{}, opErr("add", "appointment", a.ProviderID, ErrInvalidAppointment)
	}
	if _, err := time.Parse(config.DateLayout, a.Date); err != nil {
		return models.Appointment{}, opErr("add", "appointment", a.ProviderID, ErrInvalidDate)
	}
	a.ID = uuid.NewString()
	a.Status = models.StatusUpcoming
	a.CreatedAt = d.now()

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM appointments WHERE provider_id = ? AND date = ? AND time = ? AND status = ?",
			a.ProviderID, a.Date, a.Time, string(models.StatusUpcoming)).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return ErrSlotTaken
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO appointments (id, kind, provider_id, provider_name, date, time, session_type, status, concerns, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, string(a.Kind), a.ProviderID, a.ProviderName, a.Date, a.Time, string(a.Type),
			string(a.Status), nullableString(a.Concerns), a.CreatedAt)
		return err
	})
	if err != nil {
		return models.Appointment{}, opErr("add", "appointment", a.ProviderID, err)
	}
	return a, nil
}

// Appointments lists upcoming bookings soonest first, then past ones newest
// first.
func (d *Database) Appointments(ctx context.Context, limit int) ([]models.Appointment, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, kind, provider_id, provider_name, date, time, session_type, status, concerns, created_at
		FROM appointments
		ORDER BY
			CASE status WHEN 'upcoming' THEN 0 ELSE 1 END,
			CASE WHEN status = 'upcoming' THEN date END ASC,
			date DESC,
			created_at
		LIMIT ?`, limit)
	if err != nil {
		return nil, opErr("list", "appointment", "", err)
	}
	defer rows.Close()

	var out []models.Appointment
	for rows.Next() {
		var a models.Appointment
		var kind, sessionType, status string
		var concerns sql.NullString
		if err := rows.Scan(&a.ID, &kind, &a.ProviderID, &a.ProviderName, &a.Date, &a.Time,
			&sessionType, &status, &concerns, &a.CreatedAt); err != nil {
			return nil, opErr("list", "appointment", "", err)
		}
		a.Kind = models.ProviderKind(kind)
		a.Type = models.SessionType(sessionType)
		a.Status = models.AppointmentStatus(status)
		a.Concerns = concerns.String
		out = append(out, a)
	}
	return out, opErr("list", "appointment", "", rows.Err())
}

// CancelAppointment marks an upcoming appointment cancelled.
func (d *Database) CancelAppointment(ctx context.Context, id string) error {
	res, err := d.DB.ExecContext(ctx,
		"UPDATE appointments SET status = ? WHERE id = ? AND status = ?",
		string(models.StatusCancelled), id, string(models.StatusUpcoming))
	if err != nil {
		return opErr("cancel", "appointment", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return opErr("cancel", "appointment", id, err)
	}
	if n == 0 {
		return opErr("cancel", "appointment", id, ErrAppointmentNotFound)
	}
	return nil
}
