package config

// Layout constants.
const (
	// ProgressBarWidth is the preferred width of the session progress bar.
	ProgressBarWidth = 40

	// MinProgressWidth is the narrowest bar rendered on small terminals.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// DescriptionWidth caps preset descriptions in the selector.
	DescriptionWidth = 56
)

// Display limits.
const (
	// MaxChatMessages limits the transcript shown in the chat view.
	MaxChatMessages = 12

	// MaxJournalShown limits journal entries listed below the editor.
	MaxJournalShown = 5

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxJournalLength is the maximum journal entry length.
	MaxJournalLength = 500

	// MaxChatLength is the maximum chat message length.
	MaxChatLength = 200
)
