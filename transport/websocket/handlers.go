package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, err.Error())
	}

	game, err := that.games.NewGame(ctx, payloadReq.Type)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(c, msg.Action, fmt.Sprintf("failed to create a new game: %v", err))
	}

	that.subscribe(game.ID, c)

	log.Info("game created", "gameID", game.ID)

	return c.sendMessage(msg.Action, gamePayload(game))
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, c *client) error {
	log := that.logger.With("method", "handleGameState")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, err.Error())
	}

	if payloadReq.GameID == "" {
		return that.sendErrorResponse(c, msg.Action, "game_id is required")
	}

	game, err := that.games.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		log.Error("failed to get game", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(c, msg.Action, fmt.Sprintf("game %s: %v", payloadReq.GameID, err))
	}

	that.subscribe(game.ID, c)

	return c.sendMessage(msg.Action, gamePayload(game))
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, c *client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, err.Error())
	}

	if payloadReq.GameID == "" || payloadReq.Cell == nil {
		return that.sendErrorResponse(c, msg.Action, "game_id and cell are required")
	}

	game, err := that.games.Play(ctx, payloadReq.GameID, *payloadReq.Cell)

	return that.respond(msg.Action, c, payloadReq.GameID, game, err)
}

func (that *Server) handleGameJump(ctx context.Context, msg *Message, c *client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, err.Error())
	}

	if payloadReq.GameID == "" || payloadReq.Move == nil {
		return that.sendErrorResponse(c, msg.Action, "game_id and move are required")
	}

	game, err := that.games.JumpTo(ctx, payloadReq.GameID, *payloadReq.Move)

	return that.respond(msg.Action, c, payloadReq.GameID, game, err)
}

func (that *Server) handleGameLeave(_ context.Context, msg *Message, c *client) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(c, msg.Action, err.Error())
	}

	if payloadReq.GameID == "" {
		return that.sendErrorResponse(c, msg.Action, "game_id is required")
	}

	that.unsubscribe(payloadReq.GameID, c)

	return c.sendMessage(msg.Action, Payload{GameID: payloadReq.GameID})
}

// respond - rejected moves go back to the sender only, accepted ones to every subscriber.
func (that *Server) respond(action string, c *client, gameID string, game *entity.Game, err error) error {
	log := that.logger.With("method", "respond", "action", action, "gameID", gameID)

	switch {
	case err == nil:
		that.subscribe(game.ID, c)
		that.broadcast(action, game)
		return nil
	case game != nil && apperror.IsRuleViolation(err):
		resp := gamePayload(game)
		resp.Error = err.Error()
		return c.sendMessage(action, resp)
	default:
		log.Error("failed to update game", "error", err)
		return that.sendErrorResponse(c, action, fmt.Sprintf("game %s: %v", gameID, err))
	}
}

func (that *Server) broadcast(action string, game *entity.Game) {
	log := that.logger.With("method", "broadcast", "gameID", game.ID)

	payload := gamePayload(game)
	for _, subscriber := range that.gameSubscribers(game.ID) {
		if err := subscriber.sendMessage(action, payload); err != nil {
			log.Error("failed to send game update", "error", err)
			that.unsubscribe(game.ID, subscriber)
		}
	}
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

func gamePayload(game *entity.Game) Payload {
	view := tictactoe.NewView(game)

	return Payload{
		GameID: game.ID,
		Game:   &view,
	}
}
