package content

import (
	"encoding/json"

	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/errors"
)

// Bundle is a user-authored content export: overlay collections that can
// be shared between installs as a single JSON document.
type Bundle struct {
	Items      []entities.Item        `json:"items,omitempty"`
	Actions    []entities.BoardAction `json:"actions,omitempty"`
	Cards      []entities.Card        `json:"cards,omitempty"`
	EventCards []entities.Card        `json:"eventCards,omitempty"`
}

// ParseBundle decodes and validates an imported bundle. A malformed
// document is rejected whole so a failed import stays a no-op; entries
// that fail content validation are dropped and reported like base content.
func ParseBundle(data []byte) (*Bundle, []string, error) {
	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed content bundle")
	}

	var problems []string
	var dropped []string

	bundle.Items, dropped = ValidateItems(bundle.Items)
	problems = append(problems, dropped...)
	bundle.Actions, dropped = ValidateActions(bundle.Actions)
	problems = append(problems, dropped...)
	bundle.Cards, dropped = ValidateCards(bundle.Cards)
	problems = append(problems, dropped...)
	bundle.EventCards, dropped = ValidateCards(bundle.EventCards)
	problems = append(problems, dropped...)

	return &bundle, problems, nil
}

// ExportBundle serializes overlay collections for sharing
func ExportBundle(bundle *Bundle) ([]byte, error) {
	if bundle == nil {
		return nil, errors.InvalidArgument("bundle is required")
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize bundle")
	}
	return data, nil
}
