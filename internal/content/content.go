// Package content loads the static game collections, validates them, and
// resolves user-authored overlays on top of the base content. Invalid
// entries are dropped and reported, never fatal: the game proceeds with
// the valid subset.
package content

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/errors"
)

//go:embed data/*.json
var dataFS embed.FS

// Library holds the validated content collections shared by both variants
type Library struct {
	Items      []entities.Item
	Actions    []entities.BoardAction
	Cards      []entities.Card
	EventCards []entities.Card
	Board      *entities.Board

	// Problems collects the load-time validation reports for dropped entries
	Problems []string
}

// Load reads and validates the embedded base collections. Only a broken
// board topology is fatal; bad entries elsewhere are dropped into Problems.
func Load() (*Library, error) {
	lib := &Library{}

	var rawItems []entities.Item
	if err := readJSON("data/items.json", &rawItems); err != nil {
		return nil, err
	}
	var rawActions []entities.BoardAction
	if err := readJSON("data/actions.json", &rawActions); err != nil {
		return nil, err
	}
	var rawCards []entities.Card
	if err := readJSON("data/cards.json", &rawCards); err != nil {
		return nil, err
	}
	var rawEvents []entities.Card
	if err := readJSON("data/event6.json", &rawEvents); err != nil {
		return nil, err
	}
	var board entities.Board
	if err := readJSON("data/board.json", &board); err != nil {
		return nil, err
	}

	var problems []string
	lib.Items, problems = ValidateItems(rawItems)
	lib.Problems = append(lib.Problems, problems...)
	lib.Actions, problems = ValidateActions(rawActions)
	lib.Problems = append(lib.Problems, problems...)
	lib.Cards, problems = ValidateCards(rawCards)
	lib.Problems = append(lib.Problems, problems...)
	lib.EventCards, problems = ValidateCards(rawEvents)
	lib.Problems = append(lib.Problems, problems...)

	if err := ValidateBoard(&board); err != nil {
		return nil, errors.Wrap(err, "invalid board topology")
	}
	board.Index()
	lib.Board = &board

	return lib, nil
}

func readJSON(name string, target any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "failed to read embedded %s", name)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, fmt.Sprintf("failed to parse %s", name))
	}
	return nil
}

// ValidateItems drops card-variant items with missing or invalid fields
// and reports each drop
func ValidateItems(items []entities.Item) ([]entities.Item, []string) {
	valid := make([]entities.Item, 0, len(items))
	var problems []string
	seen := make(map[string]struct{}, len(items))

	for i, item := range items {
		switch {
		case item.ID == "":
			problems = append(problems, fmt.Sprintf("item %d: missing id", i))
		case hasDuplicate(seen, item.ID):
			problems = append(problems, fmt.Sprintf("item %s: duplicate id", item.ID))
		case !item.Type.Valid():
			problems = append(problems, fmt.Sprintf("item %s: invalid type %q", item.ID, item.Type))
		case !item.Level.Valid():
			problems = append(problems, fmt.Sprintf("item %s: invalid level %q", item.ID, item.Level))
		case len(item.Mode) == 0 || !validModes(item.Mode):
			problems = append(problems, fmt.Sprintf("item %s: invalid mode set", item.ID))
		case item.Text == "":
			problems = append(problems, fmt.Sprintf("item %s: empty text", item.ID))
		default:
			seen[item.ID] = struct{}{}
			valid = append(valid, item)
		}
	}
	return valid, problems
}

// ValidateActions drops board actions with missing or invalid fields and
// reports each drop. Visual actions must carry an icon.
func ValidateActions(actions []entities.BoardAction) ([]entities.BoardAction, []string) {
	valid := make([]entities.BoardAction, 0, len(actions))
	var problems []string
	seen := make(map[string]struct{}, len(actions))

	for i, action := range actions {
		switch {
		case action.ID == "":
			problems = append(problems, fmt.Sprintf("action %d: missing id", i))
		case hasDuplicate(seen, action.ID):
			problems = append(problems, fmt.Sprintf("action %s: duplicate id", action.ID))
		case !action.Category.Valid():
			problems = append(problems, fmt.Sprintf("action %s: invalid category %q", action.ID, action.Category))
		case !action.Zone.Valid():
			problems = append(problems, fmt.Sprintf("action %s: invalid zone %q", action.ID, action.Zone))
		case action.Text == "":
			problems = append(problems, fmt.Sprintf("action %s: empty text", action.ID))
		case action.Category == entities.CategoryAcaoVisual && action.Icon == "":
			problems = append(problems, fmt.Sprintf("action %s: visual action without icon", action.ID))
		default:
			seen[action.ID] = struct{}{}
			valid = append(valid, action)
		}
	}
	return valid, problems
}

// ValidateCards drops deck cards with missing or invalid fields and
// reports each drop
func ValidateCards(cards []entities.Card) ([]entities.Card, []string) {
	valid := make([]entities.Card, 0, len(cards))
	var problems []string
	seen := make(map[string]struct{}, len(cards))

	for i, card := range cards {
		switch {
		case card.ID == "":
			problems = append(problems, fmt.Sprintf("card %d: missing id", i))
		case hasDuplicate(seen, card.ID):
			problems = append(problems, fmt.Sprintf("card %s: duplicate id", card.ID))
		case !card.Zone.Valid():
			problems = append(problems, fmt.Sprintf("card %s: invalid zone %q", card.ID, card.Zone))
		case card.Text == "":
			problems = append(problems, fmt.Sprintf("card %s: empty text", card.ID))
		default:
			seen[card.ID] = struct{}{}
			valid = append(valid, card)
		}
	}
	return valid, problems
}

// ValidateBoard checks the board topology. Unlike item collections a bad
// board cannot degrade gracefully, so any defect is an error.
func ValidateBoard(board *entities.Board) error {
	if board == nil || len(board.Tiles) == 0 {
		return errors.InvalidArgument("board has no tiles")
	}

	seen := make(map[int]struct{}, len(board.Tiles))
	finishCount := 0
	for _, tile := range board.Tiles {
		if tile.ID < 1 {
			return errors.InvalidArgumentf("tile id %d out of range", tile.ID)
		}
		if _, dup := seen[tile.ID]; dup {
			return errors.InvalidArgumentf("duplicate tile id %d", tile.ID)
		}
		seen[tile.ID] = struct{}{}
		if !tile.Zone.Valid() {
			return errors.InvalidArgumentf("tile %d: invalid zone %q", tile.ID, tile.Zone)
		}
		if !tile.Type.Valid() {
			return errors.InvalidArgumentf("tile %d: invalid type %q", tile.ID, tile.Type)
		}
		if tile.Type == entities.TileEspecial {
			if tile.Special == nil || !tile.Special.Kind.Valid() {
				return errors.InvalidArgumentf("tile %d: special tile without valid directive", tile.ID)
			}
			switch tile.Special.Kind {
			case entities.DirectiveAdvance, entities.DirectiveBack:
				if tile.Special.Amount < 1 {
					return errors.InvalidArgumentf("tile %d: %s directive needs a positive amount, got %d",
						tile.ID, tile.Special.Kind, tile.Special.Amount)
				}
			}
		}
		if tile.Type == entities.TileFinish {
			finishCount++
		}
	}
	if finishCount != 1 {
		return errors.InvalidArgumentf("board must have exactly one finish tile, found %d", finishCount)
	}

	for _, conn := range board.Connections {
		if _, ok := seen[conn.From]; !ok {
			return errors.InvalidArgumentf("connection from unknown tile %d", conn.From)
		}
		if _, ok := seen[conn.To]; !ok {
			return errors.InvalidArgumentf("connection to unknown tile %d", conn.To)
		}
	}
	return nil
}

func hasDuplicate(seen map[string]struct{}, id string) bool {
	_, dup := seen[id]
	return dup
}

func validModes(modes []entities.Mode) bool {
	for _, m := range modes {
		if !m.Valid() {
			return false
		}
	}
	return true
}
