package tictactoe

import "github.com/rocketscienceinc/tictactoe-history/internal/entity"

// View - game state as sent to clients.
type View struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Board       entity.Board  `json:"board"`
	CurrentMove int           `json:"current_move"`
	Status      Status        `json:"status"`
	History     []HistoryItem `json:"history"`
}

type HistoryItem struct {
	Move        int            `json:"move"`
	Description string         `json:"description"`
	Mark        entity.Mark    `json:"mark,omitempty"`
	Coords      *entity.Coords `json:"coords,omitempty"`
	Current     bool           `json:"current,omitempty"`
}

func NewView(game *entity.Game) View {
	items := make([]HistoryItem, 0, len(game.History))
	for move, entry := range game.History {
		item := HistoryItem{
			Move:        move,
			Description: Describe(game, move),
			Coords:      entry.Coords,
			Current:     move == game.CurrentMove,
		}
		if move > 0 {
			item.Mark = MoveMark(move)
		}

		items = append(items, item)
	}

	return View{
		ID:          game.ID,
		Type:        game.Type,
		Board:       game.CurrentBoard(),
		CurrentMove: game.CurrentMove,
		Status:      GameStatus(game),
		History:     items,
	}
}
