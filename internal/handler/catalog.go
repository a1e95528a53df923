package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/item"
)

// HandleListItems returns the item catalog
// @Summary Item catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} ItemResponse
// @Router /items [get]
func HandleListItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}
		respondJSON(w, http.StatusOK, toItemResponses(items))
	}
}

// HandleListRealms returns every realm
// @Summary Realms
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.RealmInfo
// @Router /realms [get]
func HandleListRealms(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		realms, err := svc.ListRealms(r.Context())
		if err != nil {
			respondServiceError(w, r, "List realms", err)
			return
		}
		respondJSON(w, http.StatusOK, orEmpty(realms))
	}
}

// HandleListMonsters returns the monsters of a realm
// @Summary Monsters by realm
// @Tags catalog
// @Produce json
// @Param realm path string true "Realm" Enums(earth, moon, mars)
// @Success 200 {array} domain.Monster
// @Failure 400 {object} ErrorResponse
// @Router /realms/{realm}/monsters [get]
func HandleListMonsters(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		realm := domain.Realm(chi.URLParam(r, "realm"))
		monsters, err := svc.ListMonstersByRealm(r.Context(), realm)
		if err != nil {
			respondServiceError(w, r, "List monsters", err)
			return
		}
		respondJSON(w, http.StatusOK, orEmpty(monsters))
	}
}
