package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/wordgame/internal/api/request"
	"github.com/mcoot/wordgame/internal/api/response"
	"github.com/mcoot/wordgame/internal/model"
	"github.com/mcoot/wordgame/internal/services/game"
)

// GameHandler handles the session endpoints
type GameHandler struct {
	gameController *game.Controller
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger.With(slog.String("component", "game-handler")),
	}
}

// New handles POST /api/v1/game
func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	snap, err := h.gameController.NewGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(snap))
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeSnapshot(w, http.StatusOK)
}

// Place handles POST /api/v1/game/placements
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	if err := h.gameController.PlaceTile(model.TileID(req.TileID), pos); err != nil {
		WriteError(w, err)
		return
	}

	h.writeSnapshot(w, http.StatusOK)
}

// Retract handles DELETE /api/v1/game/placements/{tile_id}
func (h *GameHandler) Retract(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["tile_id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("tile_id must be an integer"))
		return
	}

	if err := h.gameController.RetractTile(model.TileID(id)); err != nil {
		WriteError(w, err)
		return
	}

	h.writeSnapshot(w, http.StatusOK)
}

// AssignBlank handles POST /api/v1/game/blanks
func (h *GameHandler) AssignBlank(w http.ResponseWriter, r *http.Request) {
	var req request.BlankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if utf8.RuneCountInString(req.Letter) != 1 {
		WriteError(w, NewInvalidRequestError("letter must be a single character"))
		return
	}
	letter, _ := utf8.DecodeRuneInString(req.Letter)

	if err := h.gameController.AssignBlank(model.TileID(req.TileID), letter); err != nil {
		WriteError(w, err)
		return
	}

	h.writeSnapshot(w, http.StatusOK)
}

// EndTurn handles POST /api/v1/game/end-turn
func (h *GameHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	h.humanTurn(w, r, h.gameController.EndTurn)
}

// Exchange handles POST /api/v1/game/exchange
func (h *GameHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	h.humanTurn(w, r, h.gameController.ExchangeRack)
}

// Pass handles POST /api/v1/game/pass
func (h *GameHandler) Pass(w http.ResponseWriter, r *http.Request) {
	h.humanTurn(w, r, h.gameController.Pass)
}

// History handles GET /api/v1/game/history
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	events, err := h.gameController.History()
	if err != nil {
		WriteError(w, err)
		return
	}
	resp := lo.Map(events, func(e model.Event, _ int) response.Event { return response.EventFromModel(e) })
	response.JSON(w, http.StatusOK, resp)
}

// Results handles GET /api/v1/results
func (h *GameHandler) Results(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	summaries, err := h.gameController.Results(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}
	resp := lo.Map(summaries, func(s *model.GameSummary, _ int) response.GameSummary {
		return response.GameSummaryFromModel(s)
	})
	response.JSON(w, http.StatusOK, resp)
}

// humanTurn runs a turn-ending command and, once play has passed to the
// computer, its reply
func (h *GameHandler) humanTurn(w http.ResponseWriter, r *http.Request, action func(context.Context) (model.TurnResult, error)) {
	result, err := action(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.TurnResponse{
		Result:   response.TurnResultFromModel(result),
		Opponent: h.processAITurn(r.Context()),
	}

	snap, err := h.gameController.Snapshot()
	if err != nil {
		WriteError(w, err)
		return
	}
	resp.Game = response.GameFromModel(snap)
	response.JSON(w, http.StatusOK, resp)
}

// processAITurn plays the computer's turn if it is due
func (h *GameHandler) processAITurn(ctx context.Context) *response.TurnResult {
	snap, err := h.gameController.Snapshot()
	if err != nil || snap.Game.IsComplete() || snap.Game.CurrentPlayer != model.PlayerAI {
		return nil
	}

	result, err := h.gameController.PlayAITurn(ctx)
	if err != nil {
		h.logger.Error("ai turn failed", slog.String("error", err.Error()))
		return nil
	}
	resp := response.TurnResultFromModel(result)
	return &resp
}

func (h *GameHandler) writeSnapshot(w http.ResponseWriter, status int) {
	snap, err := h.gameController.Snapshot()
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, response.GameFromModel(snap))
}
