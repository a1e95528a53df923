package handler

import (
	"net/http"

	"github.com/osse101/IdleRealms_Go/internal/inventory"
	"github.com/osse101/IdleRealms_Go/internal/logger"
)

// UpdateInventoryRequest sets an entry's quantity. quantity <= 0 removes the
// entry; an omitted is_equipped keeps the current flag.
type UpdateInventoryRequest struct {
	CharacterID int   `json:"character_id" validate:"required,min=1,max=2147483647"`
	ItemID      int   `json:"item_id" validate:"required,min=1,max=2147483647"`
	Quantity    int   `json:"quantity" validate:"max=1000000"`
	IsEquipped  *bool `json:"is_equipped,omitempty"`
}

// HandleUpdateInventory upserts or removes a ledger entry
// @Summary Update inventory
// @Description Create, update, remove or equip an inventory entry
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body UpdateInventoryRequest true "Entry"
// @Success 200 {object} domain.InventoryEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory [post]
func HandleUpdateInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateInventoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update inventory"); err != nil {
			return
		}

		logger.FromContext(r.Context()).Debug("Update inventory request",
			"character_id", req.CharacterID,
			"item_id", req.ItemID,
			"quantity", req.Quantity)

		entry, err := svc.UpdateInventory(r.Context(), req.CharacterID, req.ItemID, req.Quantity, req.IsEquipped)
		if err != nil {
			respondServiceError(w, r, "Update inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}

// HandleGetInventory lists a character's entries
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param characterID path int true "Character ID"
// @Success 200 {array} domain.InventoryEntry
// @Failure 404 {object} ErrorResponse
// @Router /characters/{characterID}/inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "characterID")
		if !ok {
			return
		}
		entries, err := svc.GetInventory(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, orEmpty(entries))
	}
}
