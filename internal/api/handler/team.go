package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/courtqueue/internal/api/apierr"
	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
	"github.com/mcoot/courtqueue/internal/model"
	"github.com/mcoot/courtqueue/internal/services/queue"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	controller Controller
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(controller Controller) *TeamHandler {
	return &TeamHandler{controller: controller}
}

// List handles GET /api/v1/teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.State(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.TeamList{Teams: response.TeamsFromModel(state, state.Teams)})
}

// Create handles POST /api/v1/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.TeamRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	state, team, err := h.controller.CreateTeam(r.Context(), req.MemberIDs(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeTeam(w, http.StatusCreated, state, team)
}

// CreateRandom handles POST /api/v1/teams/random
func (h *TeamHandler) CreateRandom(w http.ResponseWriter, r *http.Request) {
	state, team, err := h.controller.CreateRandomTeam(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	writeTeam(w, http.StatusCreated, state, team)
}

// Edit handles PUT /api/v1/teams/{teamId}
func (h *TeamHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["teamId"])

	var req request.TeamRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	state, team, err := h.controller.EditTeam(r.Context(), id, req.MemberIDs(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeTeam(w, http.StatusOK, state, team)
}

// Remove handles DELETE /api/v1/teams/{teamId}
func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["teamId"])

	if err := h.controller.RemoveTeam(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Move handles POST /api/v1/teams/{teamId}/move
func (h *TeamHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["teamId"])

	var req request.MoveTeamRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	dir := queue.Direction(req.Direction)
	if dir != queue.DirectionUp && dir != queue.DirectionDown {
		WriteError(w, apierr.NewInvalidRequestError("direction must be up or down"))
		return
	}

	state, err := h.controller.MoveTeam(r.Context(), id, dir)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Court(w, http.StatusOK, state, response.Queue{Teams: response.TeamsFromModel(state, queue.Queue(state))})
}

// writeTeam answers with the team as it stands in the state the mutation
// produced
func writeTeam(w http.ResponseWriter, status int, state *model.GameState, team *model.Team) {
	if team == nil {
		WriteError(w, model.ErrTeamNotFound)
		return
	}
	response.Court(w, status, state, response.TeamFromModel(state, *team))
}
