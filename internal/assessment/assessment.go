// Package assessment holds the self-screening questionnaires (PHQ-9 and
// GAD-7) and turns a set of answers into a score, a severity level and a
// list of recommendations.
package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAssessment = errors.New("unknown assessment")
	ErrInvalidAnswer     = errors.New("answer out of range")
	ErrIncomplete        = errors.New("assessment has unanswered questions")
)

// Level is a severity band.
type Level string

const (
	LevelMinimal          Level = "Minimal"
	LevelMild             Level = "Mild"
	LevelModerate         Level = "Moderate"
	LevelModeratelySevere Level = "Moderately Severe"
	LevelSevere           Level = "Severe"
)

// Option is one selectable answer.
type Option struct {
	Value int
	Label string
}

// Question is a single screening item.
type Question struct {
	ID   int
	Text string
}

// Band maps scores up to Max (inclusive) to a level.
type Band struct {
	Max         int
	Level       Level
	Description string
}

// Assessment is a fixed questionnaire.
type Assessment struct {
	ID        string
	Title     string
	Questions []Question
	Bands     []Band
}

// MaxScore is the highest possible total.
func (a Assessment) MaxScore() int {
	return len(a.Questions) * maxAnswer
}

// Result is a scored questionnaire.
type Result struct {
	AssessmentID       string
	Score              int
	MaxScore           int
	Level              Level
	Description        string
	Recommendations    []string
	NeedsCrisisSupport bool
}

const maxAnswer = 3

// Options are shared by every question in both questionnaires.
var Options = []Option{
	{0, "Not at all"},
	{1, "Several days"},
	{2, "More than half the days"},
	{3, "Nearly every day"},
}

// Score validates answers (one per question, each 0..3) and interprets the total.
func (a Assessment) Score(answers []int) (Result, error) {
	if len(answers) != len(a.Questions) {
		return Result{}, fmt.Errorf("%s: %d of %d answered: %w", a.ID, len(answers), len(a.Questions), ErrIncomplete)
	}
	total := 0
	for i, v := range answers {
		if v < 0 || v > maxAnswer {
			return Result{}, fmt.Errorf("%s question %d: %d: %w", a.ID, i+1, v, ErrInvalidAnswer)
		}
		total += v
	}
	return a.Interpret(total), nil
}

// Interpret maps a total score to its band.
func (a Assessment) Interpret(score int) Result {
	r := Result{AssessmentID: a.ID, Score: score, MaxScore: a.MaxScore()}
	for _, b := range a.Bands {
		if score <= b.Max {
			r.Level, r.Description = b.Level, b.Description
			break
		}
	}
	r.Recommendations = Recommendations(r.Level)
	r.NeedsCrisisSupport = r.Level == LevelModeratelySevere || r.Level == LevelSevere
	return r
}

// Recommendations returns next steps for a level.
func Recommendations(l Level) []string {
	switch l {
	case LevelMinimal:
		return []string{
			"Continue maintaining good mental health habits",
			"Regular exercise and healthy sleep patterns",
			"Stay connected with friends and family",
			"Consider periodic check-ins with our resources",
		}
	case LevelMild:
		return []string{
			"Consider speaking with a peer mentor",
			"Explore our stress management resources",
			"Practice mindfulness and relaxation techniques",
			"Monitor your symptoms over the next few weeks",
		}
	case LevelModerate:
		return []string{
			"We recommend booking an appointment with a counselor",
			"Connect with our peer support network",
			"Use our guided meditation and breathing exercises",
			"Consider lifestyle changes to reduce stress",
		}
	case LevelModeratelySevere, LevelSevere:
		return []string{
			"Please consider booking an appointment with a mental health professional",
			"Reach out to our crisis support resources if needed",
			"Connect with trusted friends, family, or mentors",
			"Avoid making major life decisions while feeling this way",
		}
	}
	return []string{"Thank you for completing the assessment"}
}

// CrisisContacts are shown alongside severe results.
var CrisisContacts = []string{
	"National Suicide Prevention Helpline: 9152987821",
	"KIRAN Mental Health Helpline: 1800-599-0019",
	"Emergency Services: 112",
}
