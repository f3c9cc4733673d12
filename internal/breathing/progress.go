package breathing

import (
	"math"

	"github.com/akyairhashvil/umeed/internal/models"
)

// PhaseOffset is the sum of durations of the phases before p in cycle order.
func PhaseOffset(pattern models.BreathingPattern, p models.Phase) int {
	offset := 0
	for _, q := range models.PhaseOrder {
		if q == p {
			break
		}
		offset += pattern.Duration(q)
	}
	return offset
}

// Progress is the whole-exercise completion percentage in [0, 100].
func Progress(s models.TimerState) float64 {
	if s.Preset == nil {
		return 0
	}
	cycleLen := s.Preset.Pattern.CycleLength()
	total := cycleLen * s.Preset.Cycles
	if total <= 0 {
		return 0
	}
	done := s.CompletedCycles*cycleLen + PhaseOffset(s.Preset.Pattern, s.Phase) + s.Elapsed
	return math.Min(100, 100*float64(done)/float64(total))
}

// PhaseProgress is the completion percentage of the current phase.
func PhaseProgress(s models.TimerState) float64 {
	if s.Preset == nil {
		return 0
	}
	d := s.Preset.Pattern.Duration(s.Phase)
	if d <= 0 {
		return 0
	}
	return math.Min(100, 100*float64(s.Elapsed)/float64(d))
}

// Instruction is the prompt shown to the user for a phase.
func Instruction(p models.Phase) string {
	switch p {
	case models.PhaseInhale:
		return "Breathe In"
	case models.PhaseHold:
		return "Hold"
	case models.PhaseExhale:
		return "Breathe Out"
	case models.PhasePause:
		return "Pause"
	}
	return ""
}
