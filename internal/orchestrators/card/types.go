package card

import (
	"github.com/fogoseda/party-api/internal/entities"
)

// DrawKind selects which pool a draw pulls from
type DrawKind string

// Draw kinds
const (
	DrawTruth  DrawKind = "truth"
	DrawDare   DrawKind = "dare"
	DrawRandom DrawKind = "random"
)

// NewSessionInput contains parameters for creating a session
type NewSessionInput struct {
	// SessionID is optional; one is generated when empty
	SessionID string
	Level     entities.Level
	Mode      entities.Mode
	Theme     string
}

// NewSessionOutput contains the created session
type NewSessionOutput struct {
	Session *entities.CardSession
}

// GetSessionInput contains parameters for fetching a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the fetched session
type GetSessionOutput struct {
	Session *entities.CardSession
}

// DrawInput contains parameters for drawing an item
type DrawInput struct {
	SessionID string
	Kind      DrawKind
}

// DrawOutput contains the drawn item
type DrawOutput struct {
	Session *entities.CardSession
	Item    *entities.Item

	// Marked is the item text with keyword matches bracketed
	Marked string

	// LowPool is set when either draw pool fell below the warning threshold
	LowPool bool
}

// SwapInput contains parameters for swapping the current item
type SwapInput struct {
	SessionID string
}

// SwapOutput contains the replacement item
type SwapOutput struct {
	Session *entities.CardSession
	Item    *entities.Item
	Marked  string
}

// ApplyFeedbackInput contains parameters for rating the current item
type ApplyFeedbackInput struct {
	SessionID string

	// Delta must be +1 or -1
	Delta int
}

// ApplyFeedbackOutput contains the updated score
type ApplyFeedbackOutput struct {
	Session *entities.CardSession
	ItemID  string
	Score   int
}

// UpdateSettingsInput contains the session settings to change. Nil fields
// are left untouched.
type UpdateSettingsInput struct {
	SessionID string

	Level    *entities.Level
	Mode     *entities.Mode
	Theme    *string
	Filters  *entities.BanFilters
	Keyword  *string
	NoRepeat *int
}

// UpdateSettingsOutput contains the updated session
type UpdateSettingsOutput struct {
	Session *entities.CardSession

	// Swapped is the replacement item when the settings change invalidated
	// the current one; nil otherwise
	Swapped *entities.Item

	// LowPool is set when the new settings leave a thin pool
	LowPool bool
}

// SetLevelInput changes the intensity level
type SetLevelInput struct {
	SessionID string
	Level     entities.Level
}

// SetModeInput changes the play mode
type SetModeInput struct {
	SessionID string
	Mode      entities.Mode
}

// SetFiltersInput changes the content ban filters
type SetFiltersInput struct {
	SessionID string
	Filters   entities.BanFilters
}

// SetKeywordInput changes the keyword filter; empty clears it
type SetKeywordInput struct {
	SessionID string
	Keyword   string
}

// SetNoRepeatInput changes the recency window size, clamped to the
// configured bounds
type SetNoRepeatInput struct {
	SessionID string
	NoRepeat  int
}

// BlockWordInput contains parameters for blocking a word
type BlockWordInput struct {
	SessionID string
	Word      string
}

// UnblockWordInput contains parameters for unblocking a word
type UnblockWordInput struct {
	SessionID string
	Word      string
}

// BlockWordOutput contains the updated session
type BlockWordOutput struct {
	Session *entities.CardSession
	Swapped *entities.Item
	LowPool bool
}

// ResetRepetitionInput clears the recency window
type ResetRepetitionInput struct {
	SessionID string
}

// ResetRepetitionOutput contains the updated session
type ResetRepetitionOutput struct {
	Session *entities.CardSession
}

// ClearHistoryInput clears the history ledger
type ClearHistoryInput struct {
	SessionID string
}

// ClearHistoryOutput contains the updated session
type ClearHistoryOutput struct {
	Session *entities.CardSession
}

// HistoryTextInput contains parameters for the transcript export
type HistoryTextInput struct {
	SessionID string
}

// HistoryTextOutput contains the copyable transcript
type HistoryTextOutput struct {
	Text string
}

// ShareLinkInput contains parameters for exporting session settings
type ShareLinkInput struct {
	SessionID string
}

// ShareLinkOutput contains the settings link
type ShareLinkOutput struct {
	Link string
}

// ApplyShareLinkInput contains parameters for importing session settings
type ApplyShareLinkInput struct {
	SessionID string
	Link      string
}

// ApplyShareLinkOutput contains the updated session
type ApplyShareLinkOutput struct {
	Session *entities.CardSession
}
