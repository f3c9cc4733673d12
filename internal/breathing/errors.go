package breathing

import "errors"

// Errors returned when presets are looked up, validated or registered.
var (
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrInvalidPattern  = errors.New("breathing pattern needs a positive phase and no negative ones")
	ErrInvalidCycles   = errors.New("cycle count must be positive")
	ErrDuplicatePreset = errors.New("duplicate preset id")
)
