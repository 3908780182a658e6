package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type createGameRequest struct {
	Type string `json:"type"`
}

type playRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Move *int `json:"move"`
}

type errorResponse struct {
	Error string          `json:"error"`
	Game  *tictactoe.View `json:"game,omitempty"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	game, err := that.games.NewGame(r.Context(), req.Type)
	if err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	writeJSON(w, http.StatusCreated, tictactoe.NewView(game))
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	writeJSON(w, http.StatusOK, tictactoe.NewView(game))
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) play(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	game, err := that.games.Play(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, r, err, game)
		return
	}

	writeJSON(w, http.StatusOK, tictactoe.NewView(game))
}

func (that *Server) jumpTo(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Move == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "move is required"})
		return
	}

	game, err := that.games.JumpTo(r.Context(), chi.URLParam(r, "id"), *req.Move)
	if err != nil {
		that.writeError(w, r, err, game)
		return
	}

	writeJSON(w, http.StatusOK, tictactoe.NewView(game))
}

// writeError - maps domain errors to status codes; game, when known, is echoed back unchanged.
func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error, game *entity.Game) {
	resp := errorResponse{Error: err.Error()}
	if game != nil {
		view := tictactoe.NewView(game)
		resp.Game = &view
	}

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, resp)
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrGameFinished):
		writeJSON(w, http.StatusConflict, resp)
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrInvalidType), errors.Is(err, apperror.ErrInvalidMark):
		writeJSON(w, http.StatusBadRequest, resp)
	default:
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
