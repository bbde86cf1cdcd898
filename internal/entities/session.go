package entities

import "time"

// Player is a board-variant participant
type Player struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Color              string `json:"color"`
	Position           int    `json:"position"`
	Score              int    `json:"score"`
	BlockedRounds      int    `json:"blockedRounds"`
	InteractionBlocked bool   `json:"interactionBlocked"`
}

// HistoryEntry is one resolved draw or action. Board-only fields are
// omitted for card-variant entries and vice versa.
type HistoryEntry struct {
	ItemID    string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      ItemType  `json:"type,omitempty"`
	Category  Category  `json:"category,omitempty"`
	Level     Level     `json:"level,omitempty"`
	Zone      Zone      `json:"zone,omitempty"`
	Mode      Mode      `json:"mode,omitempty"`
	Text      string    `json:"text"`
	Player    string    `json:"player,omitempty"`
	Roll      int       `json:"roll,omitempty"`
	TileID    int       `json:"tileId,omitempty"`
	Source    Source    `json:"source,omitempty"`
	Refused   bool      `json:"refused,omitempty"`
}

// PendingAction is the single action awaiting the active player's
// accept/refuse decision
type PendingAction struct {
	ItemID    string     `json:"itemId"`
	Source    Source     `json:"source"`
	Category  Category   `json:"category,omitempty"`
	Zone      Zone       `json:"zone,omitempty"`
	Text      string     `json:"text"`
	Icon      string     `json:"icon,omitempty"`
	Mandatory bool       `json:"mandatory,omitempty"`
	Directive *Directive `json:"directive,omitempty"`
}

// CardSession is the full persisted state of a card-variant session
type CardSession struct {
	ID             string         `json:"id"`
	Level          Level          `json:"level"`
	Mode           Mode           `json:"mode"`
	Theme          string         `json:"theme"`
	Filters        BanFilters     `json:"filters"`
	NoRepeat       int            `json:"noRepeat"`
	Keyword        string         `json:"keyword"`
	BlockedWords   []string       `json:"blockedWords"`
	History        []HistoryEntry `json:"history"`
	RecentIDs      []string       `json:"recentIds"`
	FeedbackScores map[string]int `json:"feedbackScores"`
	LastItemID     string         `json:"lastItemId"`
	CurrentItemID  string         `json:"currentItemId"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// BoardSession is the full persisted state of a board-variant game
type BoardSession struct {
	ID             string          `json:"id"`
	Players        []Player        `json:"players"`
	ActiveIndex    int             `json:"activeIndex"`
	Pending        *PendingAction  `json:"pending,omitempty"`
	Queue          []PendingAction `json:"queue,omitempty"`
	CardChoice     []Card          `json:"cardChoice,omitempty"`
	GameOver       bool            `json:"gameOver"`
	LastRoll       int             `json:"lastRoll,omitempty"`
	Filters        BanFilters      `json:"filters"`
	History        []HistoryEntry  `json:"history"`
	RecentIDs      []string        `json:"recentIds"`
	FeedbackScores map[string]int  `json:"feedbackScores"`
	PoolWarning    bool            `json:"poolWarning"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ActivePlayer returns the player whose turn it is
func (s *BoardSession) ActivePlayer() *Player {
	if len(s.Players) == 0 {
		return nil
	}
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Players) {
		return &s.Players[0]
	}
	return &s.Players[s.ActiveIndex]
}

// AdvanceTurn moves to the next player index modulo player count
func (s *BoardSession) AdvanceTurn() {
	if len(s.Players) == 0 {
		return
	}
	s.ActiveIndex = (s.ActiveIndex + 1) % len(s.Players)
}

// DiceEnabled reports whether the active player may roll. Exactly one of
// {pending action present, dice enabled} holds while the game is running.
func (s *BoardSession) DiceEnabled() bool {
	return !s.GameOver && s.Pending == nil && len(s.CardChoice) == 0
}

// PushHistory prepends an entry and trims the log to limit entries
func PushHistory(history []HistoryEntry, entry HistoryEntry, limit int) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(history)+1)
	out = append(out, entry)
	out = append(out, history...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PushRecent front-inserts an id into the recency window, deduplicating
// and trimming to the window size
func PushRecent(recent []string, id string, window int) []string {
	out := make([]string, 0, len(recent)+1)
	out = append(out, id)
	for _, existing := range recent {
		if existing != id {
			out = append(out, existing)
		}
	}
	if window >= 0 && len(out) > window {
		out = out[:window]
	}
	return out
}

// ClampScore clamps a feedback score into [minScore, maxScore]
func ClampScore(score, minScore, maxScore int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
