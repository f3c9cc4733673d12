package database

import (
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/umeed/internal/testutil"
)

func TestSaveMoodDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SaveMood(ctx, testutil.NewMood().OnDate("").WithScores(7, 3, 8).Build()); err != nil {
		t.Fatalf("SaveMood failed: %v", err)
	}
	entries, err := db.RecentMoods(ctx, 10)
	if err != nil {
		t.Fatalf("RecentMoods failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2024-01-16" || entries[0].Mood != 7 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestSaveMoodReplacesSameDate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	first := testutil.NewMood().OnDate("2024-01-15").WithScores(3, 8, 2).WithNotes("rough").Build()
	second := testutil.NewMood().OnDate("2024-01-15").WithScores(6, 4, 6).Build()
	if err := db.SaveMood(ctx, first); err != nil {
		t.Fatalf("SaveMood failed: %v", err)
	}
	if err := db.SaveMood(ctx, second); err != nil {
		t.Fatalf("SaveMood replace failed: %v", err)
	}
	entries, _ := db.RecentMoods(ctx, 10)
	if len(entries) != 1 {
		t.Fatalf("expected one entry per date, got %d", len(entries))
	}
	if entries[0].Mood != 6 || entries[0].Stress != 4 || entries[0].Notes != "" {
		t.Fatalf("entry not replaced: %+v", entries[0])
	}
}

func TestSaveMoodValidation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	tests := []struct {
		name  string
		date  string
		want  error
		score [3]int
	}{
		{name: "zero mood", date: "2024-01-15", score: [3]int{0, 5, 5}, want: ErrInvalidScore},
		{name: "stress too high", date: "2024-01-15", score: [3]int{5, 11, 5}, want: ErrInvalidScore},
		{name: "bad date", date: "15/01/2024", score: [3]int{5, 5, 5}, want: ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := testutil.NewMood().OnDate(tt.date).WithScores(tt.score[0], tt.score[1], tt.score[2]).Build()
			err := db.SaveMood(ctx, entry)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var opErr *OpError
			if !errors.As(err, &opErr) || opErr.Resource != "mood" {
				t.Fatalf("expected mood OpError, got %T", err)
			}
		})
	}
}

func TestRecentMoodsOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for _, date := range []string{"2024-01-12", "2024-01-14", "2024-01-13"} {
		if err := db.SaveMood(ctx, testutil.NewMood().OnDate(date).Build()); err != nil {
			t.Fatalf("SaveMood failed: %v", err)
		}
	}
	entries, err := db.RecentMoods(ctx, 2)
	if err != nil {
		t.Fatalf("RecentMoods failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Date != "2024-01-14" || entries[1].Date != "2024-01-13" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestAverageMood(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	avg, err := db.AverageMood(ctx, 7)
	if err != nil || avg != 0 {
		t.Fatalf("empty average = %v, %v", avg, err)
	}
	scores := map[string]int{"2024-01-11": 1, "2024-01-12": 8, "2024-01-13": 4, "2024-01-14": 6}
	for date, mood := range scores {
		if err := db.SaveMood(ctx, testutil.NewMood().OnDate(date).WithScores(mood, 5, 5).Build()); err != nil {
			t.Fatalf("SaveMood failed: %v", err)
		}
	}
	avg, err = db.AverageMood(ctx, 3)
	if err != nil {
		t.Fatalf("AverageMood failed: %v", err)
	}
	if avg != 6 {
		t.Fatalf("average of newest three = %v, want 6", avg)
	}
}

func TestMoodLabel(t *testing.T) {
	tests := map[int]string{1: "Very Low", 2: "Very Low", 3: "Low", 5: "Moderate", 7: "Good", 8: "Good", 9: "Excellent", 10: "Excellent"}
	for v, want := range tests {
		if got := MoodLabel(v); got != want {
			t.Fatalf("MoodLabel(%d) = %q, want %q", v, got, want)
		}
	}
}
