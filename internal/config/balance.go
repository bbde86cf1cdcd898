package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fogoseda/party-api/internal/errors"
)

// Balance holds gameplay balance tunables
type Balance struct {
	// History & repetition
	HistoryLimit      int `yaml:"history_limit"`
	NoRepeatMin       int `yaml:"no_repeat_min"`
	NoRepeatMax       int `yaml:"no_repeat_max"`
	NoRepeatDefault   int `yaml:"no_repeat_default"`
	BoardRecentWindow int `yaml:"board_recent_window"`

	// Pool warnings
	LowPoolThreshold int `yaml:"low_pool_threshold"`

	// Refusal penalties
	PenaltyTiles       int `yaml:"penalty_tiles"`
	PenaltyRounds      int `yaml:"penalty_rounds"`
	RefusePenaltyScore int `yaml:"refuse_penalty_score"`

	// Scoring
	ExecuteScore   int `yaml:"execute_score"`
	MandatoryScore int `yaml:"mandatory_score"`

	// Players
	MinPlayers int `yaml:"min_players"`
	MaxPlayers int `yaml:"max_players"`
}

// DefaultBalance returns the default balance configuration
func DefaultBalance() Balance {
	return Balance{
		HistoryLimit:       30,
		NoRepeatMin:        6,
		NoRepeatMax:        20,
		NoRepeatDefault:    12,
		BoardRecentWindow:  12,
		LowPoolThreshold:   6,
		PenaltyTiles:       3,
		PenaltyRounds:      1,
		RefusePenaltyScore: 1,
		ExecuteScore:       2,
		MandatoryScore:     3,
		MinPlayers:         2,
		MaxPlayers:         6,
	}
}

// LoadBalance reads a YAML balance file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func LoadBalance(path string) (Balance, error) {
	balance := DefaultBalance()
	if path == "" {
		return balance, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return balance, errors.Wrapf(err, "failed to read balance file %s", path)
	}
	if err := yaml.Unmarshal(data, &balance); err != nil {
		return balance, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed balance file")
	}
	if err := balance.Validate(); err != nil {
		return DefaultBalance(), err
	}

	return balance, nil
}

// Validate rejects tunable combinations the engine cannot run with
func (b Balance) Validate() error {
	vb := errors.NewValidationBuilder()
	if b.HistoryLimit < 1 {
		vb.Fieldf("history_limit", "must be at least 1, got %d", b.HistoryLimit)
	}
	if b.NoRepeatMin < 0 || b.NoRepeatMax < b.NoRepeatMin {
		vb.Fieldf("no_repeat_max", "bounds [%d,%d] are invalid", b.NoRepeatMin, b.NoRepeatMax)
	}
	if b.NoRepeatDefault < b.NoRepeatMin || b.NoRepeatDefault > b.NoRepeatMax {
		vb.Fieldf("no_repeat_default", "%d outside [%d,%d]", b.NoRepeatDefault, b.NoRepeatMin, b.NoRepeatMax)
	}
	if b.MinPlayers < 1 || b.MaxPlayers < b.MinPlayers {
		vb.Fieldf("max_players", "player bounds [%d,%d] are invalid", b.MinPlayers, b.MaxPlayers)
	}
	if b.PenaltyTiles < 0 {
		vb.Fieldf("penalty_tiles", "cannot be negative, got %d", b.PenaltyTiles)
	}
	return vb.Build()
}

// ClampNoRepeat clamps a requested no-repeat window into the configured bounds
func (b Balance) ClampNoRepeat(n int) int {
	if n < b.NoRepeatMin {
		return b.NoRepeatMin
	}
	if n > b.NoRepeatMax {
		return b.NoRepeatMax
	}
	return n
}
