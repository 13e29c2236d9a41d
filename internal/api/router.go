package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/courtqueue/internal/api/handler"
	"github.com/mcoot/courtqueue/internal/api/middleware"
	"github.com/mcoot/courtqueue/internal/api/sse"
	"github.com/mcoot/courtqueue/internal/services/auth"
	"github.com/mcoot/courtqueue/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Controller  session.ControllerInterface
	Hub         *sse.Hub
}

// NewRouter creates a new API router with all routes configured. Reads are
// public; every mutation needs an admin session.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService)
	stateHandler := handler.NewStateHandler(cfg.Controller)
	playerHandler := handler.NewPlayerHandler(cfg.Controller)
	teamHandler := handler.NewTeamHandler(cfg.Controller)
	queueHandler := handler.NewQueueHandler(cfg.Controller)
	gameHandler := handler.NewGameHandler(cfg.Controller)
	eventsHandler := handler.NewEventsHandler(cfg.Controller, cfg.Hub)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/reset", stateHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/state", stateHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/teams", teamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/queue", queueHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Admin routes
	admin := api.NewRoute().Subrouter()
	admin.Use(middleware.Admin(cfg.AuthService), middleware.Audit(cfg.Logger))
	admin.HandleFunc("/state", stateHandler.Replace).Methods(http.MethodPut)
	admin.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/players/swap", playerHandler.Swap).Methods(http.MethodPost)
	admin.HandleFunc("/players/{playerId}", playerHandler.Remove).Methods(http.MethodDelete)
	admin.HandleFunc("/teams", teamHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/teams/random", teamHandler.CreateRandom).Methods(http.MethodPost)
	admin.HandleFunc("/teams/{teamId}", teamHandler.Edit).Methods(http.MethodPut)
	admin.HandleFunc("/teams/{teamId}", teamHandler.Remove).Methods(http.MethodDelete)
	admin.HandleFunc("/teams/{teamId}/move", teamHandler.Move).Methods(http.MethodPost)
	admin.HandleFunc("/queue", queueHandler.Reorder).Methods(http.MethodPut)
	admin.HandleFunc("/game/start", gameHandler.Start).Methods(http.MethodPost)
	admin.HandleFunc("/game/winner", gameHandler.Winner).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
