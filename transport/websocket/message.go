package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	actionGameNew   = "game:new"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionGameJump  = "game:jump"
	actionGameLeave = "game:leave"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID string          `json:"game_id,omitempty"`
	Type   string          `json:"type,omitempty"`
	Cell   *int            `json:"cell,omitempty"`
	Move   *int            `json:"move,omitempty"`
	Game   *tictactoe.View `json:"game,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (that *client) sendMessage(action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(c *client, action, errorMsg string) error {
	if err := c.sendMessage(action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
