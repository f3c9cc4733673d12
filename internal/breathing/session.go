package breathing

import (
	"fmt"

	"github.com/akyairhashvil/umeed/internal/models"
)

// TickResult reports what a single tick did.
type TickResult struct {
	Advanced       bool // false when the tick was ignored
	PhaseChanged   bool
	CycleCompleted bool
	Finished       bool
	From, To       models.Phase
}

// Session is the phase timer for one exercise view. It is not safe for
// concurrent use; Runner serialises access when ticks come from a goroutine.
type Session struct {
	registry  *Registry
	preset    *models.ExercisePreset
	phase     models.Phase
	elapsed   int
	completed int
	running   bool
}

// NewSession creates a stopped session on presetID. An empty presetID leaves
// the session without a preset; ticks are ignored until one is selected.
func NewSession(registry *Registry, presetID string) (*Session, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	s := &Session{registry: registry, phase: models.PhaseInhale}
	if presetID == "" {
		return s, nil
	}
	if err := s.SelectPreset(presetID); err != nil {
		return nil, err
	}
	return s, nil
}

// Registry returns the presets this session can select from.
func (s *Session) Registry() *Registry { return s.registry }

// Start resumes ticking. It reports false when the session was already
// running, has no preset, or has finished and needs a Reset first.
func (s *Session) Start() bool {
	if s.running || s.preset == nil || s.finished() {
		return false
	}
	s.running = true
	return true
}

// Pause stops ticking and keeps every counter.
func (s *Session) Pause() {
	s.running = false
}

// Reset returns to the first phase with no progress, stopped.
func (s *Session) Reset() {
	s.running = false
	s.elapsed = 0
	s.completed = 0
	s.phase = models.PhaseInhale
	if s.preset != nil {
		s.phase = firstPhase(s.preset.Pattern)
	}
}

// SelectPreset switches to presetID and resets. An unknown id keeps the
// current preset and state.
func (s *Session) SelectPreset(presetID string) error {
	p, ok := s.registry.Lookup(presetID)
	if !ok {
		return fmt.Errorf("select %q: %w", presetID, ErrUnknownPreset)
	}
	s.preset = &p
	s.Reset()
	return nil
}

// Tick advances the timer by one second.
func (s *Session) Tick() TickResult {
	if !s.running || s.preset == nil {
		return TickResult{}
	}
	res := TickResult{Advanced: true, From: s.phase, To: s.phase}
	pattern := s.preset.Pattern

	s.elapsed++
	if s.elapsed < pattern.Duration(s.phase) {
		return res
	}

	next, wrapped := nextPhase(pattern, s.phase)
	s.elapsed = 0
	s.phase = next
	res.PhaseChanged = true
	res.To = next
	if wrapped {
		s.completed++
		res.CycleCompleted = true
	}
	if s.finished() {
		s.running = false
		res.Finished = true
	}
	return res
}

// State returns a snapshot. The preset pointer refers to a copy owned by the
// session and must not be modified.
func (s *Session) State() models.TimerState {
	return models.TimerState{
		Preset:          s.preset,
		Phase:           s.phase,
		Elapsed:         s.elapsed,
		CompletedCycles: s.completed,
		Running:         s.running,
	}
}

// Preset returns the active preset, if any.
func (s *Session) Preset() (models.ExercisePreset, bool) {
	if s.preset == nil {
		return models.ExercisePreset{}, false
	}
	return *s.preset, true
}

// Running reports whether ticks currently advance the timer.
func (s *Session) Running() bool { return s.running }

// Finished reports whether the target cycle count was reached.
func (s *Session) Finished() bool { return s.finished() }

// Remaining is the number of ticks left in the current phase.
func (s *Session) Remaining() int {
	if s.preset == nil {
		return 0
	}
	return s.preset.Pattern.Duration(s.phase) - s.elapsed
}

// Cycle is the 1-based cycle currently in progress, capped at the target.
func (s *Session) Cycle() int {
	if s.preset == nil {
		return 0
	}
	if s.completed >= s.preset.Cycles {
		return s.preset.Cycles
	}
	return s.completed + 1
}

func (s *Session) finished() bool {
	return s.preset != nil && s.completed >= s.preset.Cycles
}

func phaseIndex(p models.Phase) int {
	for i, q := range models.PhaseOrder {
		if q == p {
			return i
		}
	}
	return 0
}

// firstPhase is the first phase in cycle order with a positive duration.
func firstPhase(pattern models.BreathingPattern) models.Phase {
	for _, p := range models.PhaseOrder {
		if pattern.Duration(p) > 0 {
			return p
		}
	}
	return models.PhaseInhale
}

// nextPhase finds the next phase with a positive duration after cur and
// reports whether the search wrapped past the end of the cycle.
func nextPhase(pattern models.BreathingPattern, cur models.Phase) (models.Phase, bool) {
	n := len(models.PhaseOrder)
	start := phaseIndex(cur)
	for step := 1; step <= n; step++ {
		i := (start + step) % n
		p := models.PhaseOrder[i]
		if pattern.Duration(p) > 0 {
			return p, start+step >= n
		}
	}
	return cur, true
}
