package entity

const (
	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""
)

const (
	LocalType   = "local"
	WithBotType = "bot"
)

const BoardSize = 9

// Mark - a player's symbol placed in a cell, or EmptyCell.
type Mark = string

// Board - 3x3 grid in row-major order.
type Board [BoardSize]Mark

type Coords struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// HistoryEntry - snapshot of the board after a move. Coords is nil for the game start.
type HistoryEntry struct {
	Board  Board   `json:"board"`
	Coords *Coords `json:"coords,omitempty"`
}

type Game struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	History     []HistoryEntry `json:"history"`
	CurrentMove int            `json:"current_move"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:      id,
		Type:    gameType,
		History: []HistoryEntry{{}},
	}
}

// CurrentBoard - returns the board selected by the cursor.
func (that *Game) CurrentBoard() Board {
	return that.History[that.CurrentMove].Board
}

// LastMove - index of the most recent history entry.
func (that *Game) LastMove() int {
	return len(that.History) - 1
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) IsValidType() bool {
	return that.Type == LocalType || that.Type == WithBotType
}

func (that Board) HasEmptyCell() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return true
		}
	}

	return false
}

// EmptyCells - indices of the cells nobody has marked yet.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func IsValidMark(mark Mark) bool {
	return mark == MarkX || mark == MarkO
}
