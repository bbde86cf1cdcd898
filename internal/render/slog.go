package render

import (
	"log/slog"

	"github.com/fogoseda/party-api/internal/entities"
)

// Slog projects render events as structured log lines. The CLI uses it
// as its display surface; it is also handy when debugging a headless run.
type Slog struct {
	log *slog.Logger
}

// NewSlog creates a renderer that writes projection events to the logger
func NewSlog(log *slog.Logger) *Slog {
	if log == nil {
		log = slog.Default()
	}
	return &Slog{log: log}
}

var _ Renderer = (*Slog)(nil)

func (r *Slog) RenderBoard(board *entities.Board) {
	r.log.Info("board",
		slog.Int("tiles", len(board.Tiles)),
		slog.Int("connections", len(board.Connections)))
}

func (r *Slog) UpdateTokens(players []entities.Player) {
	for _, p := range players {
		r.log.Info("token",
			slog.String("player", p.Name),
			slog.Int("position", p.Position))
	}
}

func (r *Slog) SetActiveTile(tileID int) {
	r.log.Info("active_tile", slog.Int("tile", tileID))
}

func (r *Slog) SetPreviewTile(tileID int) {
	if tileID == 0 {
		return
	}
	r.log.Info("preview_tile", slog.Int("tile", tileID))
}

func (r *Slog) RenderPendingAction(action *entities.PendingAction) {
	if action == nil {
		return
	}
	r.log.Info("pending_action",
		slog.String("source", string(action.Source)),
		slog.String("category", string(action.Category)),
		slog.Bool("mandatory", action.Mandatory),
		slog.String("text", action.Text))
}

func (r *Slog) RenderCardChoice(cards []entities.Card) {
	for i, c := range cards {
		r.log.Info("card_choice",
			slog.Int("option", i+1),
			slog.String("text", c.Text))
	}
}

func (r *Slog) RenderCard(item *entities.Item, marked string) {
	if item == nil {
		return
	}
	text := marked
	if text == "" {
		text = item.Text
	}
	r.log.Info("card",
		slog.String("type", string(item.Type)),
		slog.String("level", string(item.Level)),
		slog.String("text", text))
}

func (r *Slog) RenderHistory(entries []entities.HistoryEntry) {
	r.log.Info("history", slog.Int("entries", len(entries)))
}

func (r *Slog) RenderLeaderboard(players []entities.Player) {
	for _, p := range players {
		r.log.Info("score",
			slog.String("player", p.Name),
			slog.Int("score", p.Score))
	}
}

func (r *Slog) ShowWarning(message string) {
	r.log.Warn(message)
}
