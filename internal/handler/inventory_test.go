package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/mocks"
)

func TestHandleUpdateInventory(t *testing.T) {
	InitValidator()
	equip := true

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Equip helmet",
			body: UpdateInventoryRequest{CharacterID: 3, ItemID: 8, Quantity: 1, IsEquipped: &equip},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("UpdateInventory", mock.Anything, 3, 8, 1, &equip).
					Return(&domain.InventoryEntry{CharacterID: 3, ItemID: 8, Quantity: 1, IsEquipped: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"is_equipped":true`,
		},
		{
			name: "Omitted flag passes nil",
			body: `{"character_id":3,"item_id":2,"quantity":5}`,
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("UpdateInventory", mock.Anything, 3, 2, 5, (*bool)(nil)).
					Return(&domain.InventoryEntry{CharacterID: 3, ItemID: 2, Quantity: 5}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"quantity":5`,
		},
		{
			name: "Creating empty entry rejected",
			body: UpdateInventoryRequest{CharacterID: 3, ItemID: 2, Quantity: 0},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("UpdateInventory", mock.Anything, 3, 2, 0, (*bool)(nil)).Return(nil, domain.ErrCannotCreateEmpty)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "quantity <= 0",
		},
		{
			name: "Level too low",
			body: UpdateInventoryRequest{CharacterID: 3, ItemID: 8, Quantity: 1, IsEquipped: &equip},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("UpdateInventory", mock.Anything, 3, 8, 1, &equip).Return(nil, domain.ErrLevelTooLow)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "level too low",
		},
		{
			name: "Unknown item",
			body: UpdateInventoryRequest{CharacterID: 3, ItemID: 999, Quantity: 1},
			setupMock: func(m *mocks.MockInventoryService) {
				m.On("UpdateInventory", mock.Anything, 3, 999, 1, (*bool)(nil)).Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "item not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			svc := mocks.NewMockInventoryService(t)
			tt.setupMock(svc)

			// ACT
			w := serve(HandleUpdateInventory(svc), newJSONRequest(t, http.MethodPost, "/api/v1/inventory", tt.body, nil))

			// ASSERT
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetInventory(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.On("GetInventory", mock.Anything, 3).Return([]domain.InventoryEntry{
		{CharacterID: 3, ItemID: 1, Quantity: 4, ItemName: "Iron Ore"},
	}, nil)

	w := serve(HandleGetInventory(svc), newJSONRequest(t, http.MethodGet, "/api/v1/characters/3/inventory", nil, map[string]string{"characterID": "3"}))

	assert.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[[]domain.InventoryEntry](t, w)
	assert.Len(t, got, 1)
	assert.Equal(t, "Iron Ore", got[0].ItemName)
}
