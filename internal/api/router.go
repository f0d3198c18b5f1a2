package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordgame/internal/api/handler"
	"github.com/mcoot/wordgame/internal/api/middleware"
	"github.com/mcoot/wordgame/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	games := api.PathPrefix("/game").Subrouter()
	games.HandleFunc("", gameHandler.New).Methods(http.MethodPost)
	games.HandleFunc("", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/placements", gameHandler.Place).Methods(http.MethodPost)
	games.HandleFunc("/placements/{tile_id}", gameHandler.Retract).Methods(http.MethodDelete)
	games.HandleFunc("/blanks", gameHandler.AssignBlank).Methods(http.MethodPost)
	games.HandleFunc("/end-turn", gameHandler.EndTurn).Methods(http.MethodPost)
	games.HandleFunc("/exchange", gameHandler.Exchange).Methods(http.MethodPost)
	games.HandleFunc("/pass", gameHandler.Pass).Methods(http.MethodPost)
	games.HandleFunc("/history", gameHandler.History).Methods(http.MethodGet)

	api.HandleFunc("/results", gameHandler.Results).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
