// Package breathing implements the guided breathing exercise: the phase
// timer state machine, the progress projection derived from it, the preset
// registry, and a Runner that drives a session from a cancellable ticker.
//
// A Session advances one tick at a time through inhale, hold, exhale and
// pause, skipping phases whose duration is zero. It stops on its own once the
// preset's cycle count is reached and stays in that final state until reset.
package breathing
