package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/umeed/internal/assessment"
	"github.com/akyairhashvil/umeed/internal/breathing"
	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
	"github.com/akyairhashvil/umeed/internal/support"
	"github.com/akyairhashvil/umeed/internal/tui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List breathing presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp("")
			if err != nil {
				return err
			}
			defer a.close()
			fmt.Fprintln(cmd.OutOrStdout(), presetTable(a.registry))
			return nil
		},
	}
}

func presetTable(r *breathing.Registry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "PATTERN", "CYCLES", "LENGTH")
	for _, p := range r.Presets() {
		total := time.Duration(p.TotalSeconds()) * config.TickInterval
		t.Row(
			p.ID,
			p.Name,
			tui.FormatPattern(p.Pattern.Inhale, p.Pattern.Hold, p.Pattern.Exhale, p.Pattern.Pause),
			strconv.Itoa(p.Cycles),
			tui.FormatDuration(total),
		)
	}
	return t.Render()
}

func newRunCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "Run a breathing exercise in plain text mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}
			presetID := config.DefaultPreset
			if len(args) == 1 {
				presetID = args[0]
			}
			a, err := loadApp("")
			if err != nil {
				return err
			}
			defer a.close()

			session, err := breathing.NewSession(a.registry, presetID)
			if err != nil {
				return err
			}
			runner := breathing.NewRunner(session, breathing.WithInterval(interval), breathing.WithLogger(a.logger))
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runExercise(ctx, cmd.OutOrStdout(), runner)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", config.TickInterval, "tick interval")
	_ = cmd.Flags().MarkHidden("interval")
	return cmd
}

// runExercise prints one line per phase until the runner finishes or ctx
// is cancelled. The runner's ticker is always released before returning.
func runExercise(ctx context.Context, out io.Writer, runner *breathing.Runner) error {
	defer runner.Stop()

	snap := runner.Snapshot()
	if snap.State.Preset == nil {
		return fmt.Errorf("no preset selected")
	}
	preset := *snap.State.Preset
	fmt.Fprintf(out, "%s: %s\n", preset.Name, preset.Description)
	printPhase(out, snap)

	if !runner.Start(ctx) {
		return fmt.Errorf("exercise %q could not start", preset.ID)
	}
	done := runner.Done()
	for {
		select {
		case snap = <-runner.Updates():
			if snap.Result.PhaseChanged && !snap.Result.Finished {
				printPhase(out, snap)
			}
		case <-done:
			select {
			case snap = <-runner.Updates():
			default:
				snap = runner.Snapshot()
			}
			if !snap.State.Finished() {
				fmt.Fprintf(out, "Stopped at %.0f%%.\n", snap.Progress)
				return nil
			}
			fmt.Fprintf(out, "Exercise complete: %d cycles, 100%%.\n", snap.State.CompletedCycles)
			return nil
		}
	}
}

func printPhase(out io.Writer, s breathing.Snapshot) {
	p := s.State.Preset
	fmt.Fprintf(out, "[cycle %d/%d] %-12s %2ds  %3.0f%%\n",
		min(s.State.CompletedCycles+1, p.Cycles), p.Cycles,
		breathing.Instruction(s.State.Phase), p.Pattern.Duration(s.State.Phase), s.Progress)
}

func newScreenCmd() *cobra.Command {
	var answers string
	cmd := &cobra.Command{
		Use:       "screen phq9|gad7",
		Short:     "Score a self-screening questionnaire",
		Args:      cobra.ExactArgs(1),
		ValidArgs: assessment.IDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := assessment.Lookup(args[0])
			if err != nil {
				return err
			}
			values, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			res, err := a.Score(values)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), a, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&answers, "answers", "", "comma-separated answers, one per question (0-3)")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, p)
		}
		out = append(out, v)
	}
	return out, nil
}

func printResult(out io.Writer, a assessment.Assessment, r assessment.Result) {
	fmt.Fprintf(out, "%s\nScore: %d/%d (%s)\n%s\n\n", a.Title, r.Score, r.MaxScore, r.Level, r.Description)
	for _, rec := range r.Recommendations {
		fmt.Fprintf(out, "- %s\n", rec)
	}
	if r.NeedsCrisisSupport {
		fmt.Fprintln(out, "\nPlease reach out now:")
		for _, c := range assessment.CrisisContacts {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
}

func newSupportCmd() *cobra.Command {
	var f support.Filter
	cmd := &cobra.Command{
		Use:       "support counselors|mentors",
		Short:     "List counselors or peer mentors",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"counselors", "mentors"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var t *table.Table
			switch args[0] {
			case "counselors":
				t = counselorTable(support.FilterCounselors(support.Counselors(), f))
			case "mentors":
				t = mentorTable(support.FilterMentors(support.Mentors(), f))
			default:
				return fmt.Errorf("unknown directory %q, want counselors or mentors", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Query, "query", "", "match names, places or specialties")
	cmd.Flags().StringVar(&f.Specialty, "specialty", "", "only show this specialty")
	return cmd
}

func counselorTable(list []models.Counselor) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "TITLE", "LOCATION", "RATING", "FEE", "SLOTS")
	for _, c := range list {
		t.Row(c.ID, c.Name, c.Title, c.Location, fmt.Sprintf("%.1f", c.Rating),
			"₹"+strconv.Itoa(c.Fee), strings.Join(c.Slots, ", "))
	}
	return t
}

func mentorTable(list []models.Mentor) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "YEAR", "COLLEGE", "RATING", "STATUS", "AVAILABILITY")
	for _, m := range list {
		status := "away"
		if m.Online {
			status = "online"
		}
		t.Row(m.ID, m.Name, m.Year, m.College, fmt.Sprintf("%.1f", m.Rating), status, strings.Join(m.Availability, ", "))
	}
	return t
}
