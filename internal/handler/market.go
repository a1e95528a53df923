package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/IdleRealms_Go/internal/market"
)

type CreateListingRequest struct {
	SellerID     int    `json:"seller_id" validate:"required,min=1,max=2147483647"`
	ItemID       int    `json:"item_id" validate:"required,min=1,max=2147483647"`
	Quantity     int    `json:"quantity" validate:"required,min=1,max=1000000"`
	PricePerUnit string `json:"price_per_unit" validate:"required,money" example:"50.25"`
}

type PurchaseRequest struct {
	BuyerID int `json:"buyer_id" validate:"required,min=1,max=2147483647"`
}

// HandleCreateListing lists items for sale
// @Summary Create market listing
// @Tags market
// @Accept json
// @Produce json
// @Param request body CreateListingRequest true "Listing"
// @Success 201 {object} ListingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /market/listings [post]
func HandleCreateListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateListingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create listing"); err != nil {
			return
		}
		price, err := decimal.NewFromString(req.PricePerUnit)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPrice)
			return
		}

		listing, err := svc.CreateMarketListing(r.Context(), req.SellerID, req.ItemID, req.Quantity, price)
		if err != nil {
			respondServiceError(w, r, "Create listing", err)
			return
		}
		respondJSON(w, http.StatusCreated, toListingResponse(listing))
	}
}

// HandleListListings returns active listings ordered by id, or every listing
// of one seller when seller_id is given
// @Summary List market listings
// @Tags market
// @Produce json
// @Param seller_id query int false "Seller character ID"
// @Success 200 {array} ListingResponse
// @Router /market/listings [get]
func HandleListListings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := queryInt(w, r, "seller_id", 0)
		if !ok {
			return
		}

		if sellerID > 0 {
			ls, err := svc.ListSellerListings(r.Context(), sellerID)
			if err != nil {
				respondServiceError(w, r, "List seller listings", err)
				return
			}
			respondJSON(w, http.StatusOK, toListingResponses(ls))
			return
		}

		ls, err := svc.ListActiveMarketListings(r.Context())
		if err != nil {
			respondServiceError(w, r, "List listings", err)
			return
		}
		respondJSON(w, http.StatusOK, toListingResponses(ls))
	}
}

// HandleGetListing returns one listing
// @Summary Get market listing
// @Tags market
// @Produce json
// @Param listingID path int true "Listing ID"
// @Success 200 {object} ListingResponse
// @Failure 404 {object} ErrorResponse
// @Router /market/listings/{listingID} [get]
func HandleGetListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "listingID")
		if !ok {
			return
		}
		listing, err := svc.GetMarketListing(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get listing", err)
			return
		}
		respondJSON(w, http.StatusOK, toListingResponse(listing))
	}
}

// HandlePurchase buys a whole listing. Missing or inactive listings, unknown
// buyers and self purchases return purchased=false.
// @Summary Purchase market listing
// @Tags market
// @Accept json
// @Produce json
// @Param listingID path int true "Listing ID"
// @Param request body PurchaseRequest true "Buyer"
// @Success 200 {object} PurchaseResponse
// @Router /market/listings/{listingID}/purchase [post]
func HandlePurchase(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "listingID")
		if !ok {
			return
		}
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
			return
		}

		result, err := svc.PurchaseMarketItem(r.Context(), id, req.BuyerID)
		if err != nil {
			respondServiceError(w, r, "Purchase", err)
			return
		}

		resp := PurchaseResponse{Purchased: result.Purchased, Reason: string(result.Reason)}
		if result.Listing != nil {
			l := toListingResponse(result.Listing)
			resp.Listing = &l
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
