package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
	"github.com/mcoot/courtqueue/internal/model"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	controller Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller Controller) *PlayerHandler {
	return &PlayerHandler{controller: controller}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.State(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.PlayerList{
		Players:    response.PlayersFromModel(state, state.Players),
		Unassigned: response.PlayersFromModel(state, state.UnassignedPlayers),
	})
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.controller.AddPlayer(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.Player{ID: string(player.ID), Name: player.Name})
}

// Remove handles DELETE /api/v1/players/{playerId}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["playerId"])

	if err := h.controller.RemovePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Swap handles POST /api/v1/players/swap
func (h *PlayerHandler) Swap(w http.ResponseWriter, r *http.Request) {
	var req request.SwapPlayersRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.controller.SwapPlayers(r.Context(), model.PlayerID(req.First), model.PlayerID(req.Second))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.StateFromModel(state))
}
