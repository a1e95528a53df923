package handler

import (
	"net/http"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/logger"
	"github.com/osse101/IdleRealms_Go/internal/user"
)

type CreateUserRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=20"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	MembershipType string `json:"membership_type" validate:"omitempty,oneof=free premium"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCharacterRequest struct {
	UserID int    `json:"user_id" validate:"required,min=1,max=2147483647"`
	Name   string `json:"name" validate:"required,min=2,max=20"`
}

// HandleCreateUser registers an account
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Account details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func HandleCreateUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create user"); err != nil {
			return
		}

		u, err := svc.CreateUser(r.Context(), user.Registration{
			Username:   req.Username,
			Email:      req.Email,
			Password:   req.Password,
			Membership: domain.MembershipTier(req.MembershipType),
		})
		if err != nil {
			respondServiceError(w, r, "Create user", err)
			return
		}

		respondJSON(w, http.StatusCreated, u)
	}
}

// HandleLogin checks an email/password pair
// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorResponse
// @Router /users/login [post]
func HandleLogin(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		logger.FromContext(r.Context()).Info("User logged in", "user_id", u.ID)
		respondJSON(w, http.StatusOK, u)
	}
}

// HandleListUserCharacters lists the characters of a user
// @Summary User characters
// @Tags users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {array} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/characters [get]
func HandleListUserCharacters(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(w, r, "userID")
		if !ok {
			return
		}
		chars, err := svc.ListCharacters(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "List characters", err)
			return
		}
		respondJSON(w, http.StatusOK, chars)
	}
}

// HandleCreateCharacter creates a character with starting stats
// @Summary Create character
// @Tags characters
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters [post]
func HandleCreateCharacter(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}
		c, err := svc.CreateCharacter(r.Context(), req.UserID, req.Name)
		if err != nil {
			respondServiceError(w, r, "Create character", err)
			return
		}
		respondJSON(w, http.StatusCreated, c)
	}
}

// HandleGetCharacter returns one character
// @Summary Get character
// @Tags characters
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /characters/{characterID} [get]
func HandleGetCharacter(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "characterID")
		if !ok {
			return
		}
		c, err := svc.GetCharacter(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get character", err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleListProfessions lists a character's gathering professions
// @Summary Character professions
// @Tags characters
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {array} domain.Profession
// @Failure 404 {object} ErrorResponse
// @Router /characters/{characterID}/professions [get]
func HandleListProfessions(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "characterID")
		if !ok {
			return
		}
		profs, err := svc.ListProfessions(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "List professions", err)
			return
		}
		respondJSON(w, http.StatusOK, orEmpty(profs))
	}
}
