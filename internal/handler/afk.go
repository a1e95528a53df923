package handler

import (
	"net/http"

	"github.com/osse101/IdleRealms_Go/internal/afk"
)

type StartAfkRequest struct {
	CharacterID   int `json:"character_id" validate:"required,min=1,max=2147483647"`
	DurationHours int `json:"duration_hours" validate:"required"`
}

// HandleStartAfk starts an AFK session
// @Summary Start AFK session
// @Description Duration must be 1..12 hours and within the owner's membership cap (free 6, premium 12)
// @Tags afk
// @Accept json
// @Produce json
// @Param request body StartAfkRequest true "Session"
// @Success 201 {object} domain.AfkSession
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /afk/start [post]
func HandleStartAfk(svc afk.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartAfkRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start AFK"); err != nil {
			return
		}
		session, err := svc.StartAfkSession(r.Context(), req.CharacterID, req.DurationHours)
		if err != nil {
			respondServiceError(w, r, "Start AFK", err)
			return
		}
		respondJSON(w, http.StatusCreated, session)
	}
}

// HandleCompleteAfk settles a finished session. A premature or repeated call
// returns completed=false with a reason.
// @Summary Complete AFK session
// @Tags afk
// @Produce json
// @Param sessionID path int true "Session ID"
// @Success 200 {object} domain.AfkCompletion
// @Router /afk/{sessionID}/complete [post]
func HandleCompleteAfk(svc afk.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "sessionID")
		if !ok {
			return
		}
		result, err := svc.CompleteAfkSession(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Complete AFK", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetAfkSession returns one session
// @Summary Get AFK session
// @Tags afk
// @Produce json
// @Param sessionID path int true "Session ID"
// @Success 200 {object} domain.AfkSession
// @Failure 404 {object} ErrorResponse
// @Router /afk/{sessionID} [get]
func HandleGetAfkSession(svc afk.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "sessionID")
		if !ok {
			return
		}
		session, err := svc.GetAfkSession(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get AFK session", err)
			return
		}
		respondJSON(w, http.StatusOK, session)
	}
}

// HandleListCharacterSessions lists a character's sessions, newest first
// @Summary Character AFK sessions
// @Tags afk
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {array} domain.AfkSession
// @Router /characters/{characterID}/afk [get]
func HandleListCharacterSessions(svc afk.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "characterID")
		if !ok {
			return
		}
		sessions, err := svc.ListCharacterSessions(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "List AFK sessions", err)
			return
		}
		respondJSON(w, http.StatusOK, orEmpty(sessions))
	}
}
