package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/akyairhashvil/umeed/internal/util"
	"github.com/google/uuid"
)

var demoMoods = []struct{ mood, stress, energy int }{
	{7, 3, 8},
	{6, 4, 6},
	{4, 7, 4},
	{8, 2, 9},
	{5, 5, 5},
}

var demoJournal = []models.JournalEntry{
	{
		Content: "Today was a good day. I felt more confident during my presentation and my classmates were supportive. The breathing exercises I learned really helped calm my nerves.",
		Mood:    models.MoodHappy,
		Tags:    []string{"confidence", "presentation", "breathing"},
	},
	{
		Content: "Had some anxiety about upcoming exams, but talking to my peer mentor helped. We discussed study strategies and I feel more prepared now.",
		Mood:    models.MoodNeutral,
		Tags:    []string{"anxiety", "exams", "mentor"},
	},
	{
		Content: "Feeling overwhelmed with coursework. The weather in Kashmir has been affecting my mood too. Need to remember to use the resources available to me.",
		Mood:    models.MoodSad,
		Tags:    []string{"overwhelmed", "weather", "coursework"},
	},
}

var demoAppointments = []struct {
	offset int
	a      models.Appointment
}{
	{1, models.Appointment{Kind: models.KindCounselor, ProviderID: "c3", ProviderName: "Dr. Priya Devi", Time: "2:30 PM", Type: models.SessionVideo, Status: models.StatusUpcoming}},
	{3, models.Appointment{Kind: models.KindMentor, ProviderID: "m4", ProviderName: "Rohit Kumar", Time: "Afternoon (12PM-6PM)", Type: models.SessionPhone, Status: models.StatusUpcoming}},
	{-6, models.Appointment{Kind: models.KindCounselor, ProviderID: "c4", ProviderName: "Dr. Amit Singh", Time: "11:00 AM", Type: models.SessionVideo, Status: models.StatusCompleted}},
	{-8, models.Appointment{Kind: models.KindMentor, ProviderID: "m3", ProviderName: "Sneha Devi", Time: "Evening (6PM-10PM)", Type: models.SessionInPerson, Status: models.StatusCompleted}},
}

// SeedDemo fills the store with sample history ending yesterday, plus a few
// bookings around today, so every view has something to show on first launch.
func (d *Database) SeedDemo(ctx context.Context) error {
	now := d.now()
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for i, m := range demoMoods {
			date := now.AddDate(0, 0, -(i + 1)).Format(config.DateLayout)
			if _, err := tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO mood_entries (date, mood, stress, energy, updated_at) VALUES (?, ?, ?, ?, ?)",
				date, m.mood, m.stress, m.energy, now); err != nil {
				return fmt.Errorf("seed mood %s: %w", date, err)
			}
		}
		for i, e := range demoJournal {
			day := now.AddDate(0, 0, -(i + 1))
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO journal_entries (id, date, content, mood, tags, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				uuid.NewString(), day.Format(config.DateLayout), e.Content, string(e.Mood), util.TagsToJSON(e.Tags), day); err != nil {
				return fmt.Errorf("seed journal: %w", err)
			}
		}
		for _, seed := range demoAppointments {
			a := seed.a
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO appointments (id, kind, provider_id, provider_name, date, time, session_type, status, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), string(a.Kind), a.ProviderID, a.ProviderName,
				now.AddDate(0, 0, seed.offset).Format(config.DateLayout), a.Time,
				string(a.Type), string(a.Status), now); err != nil {
				return fmt.Errorf("seed appointment %s: %w", a.ProviderID, err)
			}
		}
		return nil
	})
}
