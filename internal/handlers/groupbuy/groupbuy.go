package groupbuy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nstoliar/escrowd/internal/dto"
	groupbuyservice "github.com/nstoliar/escrowd/internal/service/groupbuyservice"
	"github.com/nstoliar/escrowd/pkg/utils"
	"github.com/nstoliar/escrowd/pkg/validate"
)

type Service interface {
	CloseDeal(ctx context.Context, dealID int64) (*groupbuyservice.CloseDealResult, error)
	GetDeal(ctx context.Context, dealID int64) (*groupbuyservice.DealInfo, error)
}

type GroupBuyHandler struct {
	groupBuyService Service
}

func New(groupBuyService Service) *GroupBuyHandler {
	return &GroupBuyHandler{
		groupBuyService: groupBuyService,
	}
}

// CloseDeal godoc
//
//	@Summary		Close a group-buy deal
//	@Description	Complete an active deal that reached its minimum quantity: confirm all pending pledges at the discounted price and create paid orders for them.
//	@Tags			Групповые покупки
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CloseDealRequestDTO		true	"Deal to close"
//	@Success		200		{object}	dto.CloseDealResponseDTO	"Deal completed"
//	@Failure		400		{object}	utils.Response				"Deal not active or threshold not met"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Deal not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/group-buys/close [post]
func (h *GroupBuyHandler) CloseDeal(w http.ResponseWriter, r *http.Request) {
	var req dto.CloseDealRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.groupBuyService.CloseDeal(r.Context(), req.DealID)
	if err != nil {
		switch {
		case errors.Is(err, groupbuyservice.ErrDealNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, groupbuyservice.ErrInvalidState),
			errors.Is(err, groupbuyservice.ErrThresholdNotMet):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CloseDealResponseDTO{
		DealID:             result.DealID,
		Status:             result.Status,
		TotalOrders:        result.TotalOrders,
		DiscountPercentage: result.DiscountPercentage,
		OriginalPrice:      result.OriginalPrice,
		DiscountedPrice:    result.DiscountedPrice,
		TotalSavings:       result.TotalSavings,
	})
}

// GetDeal godoc
//
//	@Summary		Get a group-buy deal
//	@Description	Fetch a deal with all of its pledges.
//	@Tags			Групповые покупки
//	@Security		BearerAuth
//	@Produce		json
//	@Param			dealID	path		int						true	"Deal ID"
//	@Success		200		{object}	dto.GetDealResponseDTO	"Deal with pledges"
//	@Failure		400		{object}	utils.Response			"Invalid deal id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Deal not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/group-buys/{dealID} [get]
func (h *GroupBuyHandler) GetDeal(w http.ResponseWriter, r *http.Request) {
	dealID, err := strconv.ParseInt(chi.URLParam(r, "dealID"), 10, 64)
	if err != nil || dealID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid deal id")
		return
	}

	info, err := h.groupBuyService.GetDeal(r.Context(), dealID)
	if err != nil {
		switch {
		case errors.Is(err, groupbuyservice.ErrDealNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	pledges := make([]dto.GroupBuyPledgeDTO, len(info.Pledges))
	for i, p := range info.Pledges {
		pledges[i] = dto.GroupBuyPledgeDTO{
			PledgeID:          p.ID,
			BuyerID:           p.BuyerID.String(),
			Quantity:          p.Quantity,
			PricePerUnitRub:   p.PricePerUnitRub,
			TotalAmountRub:    p.TotalAmountRub,
			DiscountAmountRub: p.DiscountAmountRub,
			Status:            p.Status,
			OrderID:           p.OrderID,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetDealResponseDTO{
		DealID:             info.Deal.ID,
		VendorProductID:    info.Deal.VendorProductID,
		PricePerUnitRub:    info.Deal.PricePerUnitRub,
		MinQuantity:        info.Deal.MinQuantity,
		CurrentQuantity:    info.Deal.CurrentQuantity,
		DiscountPercentage: info.Deal.DiscountPercentage,
		Status:             info.Deal.Status,
		Pledges:            pledges,
	})
}
