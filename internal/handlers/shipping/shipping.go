package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/dto"
	shippingservice "github.com/nstoliar/escrowd/internal/service/shippingservice"
	"github.com/nstoliar/escrowd/pkg/utils"
	"github.com/nstoliar/escrowd/pkg/validate"
)

type Service interface {
	Quote(ctx context.Context, in shippingservice.QuoteInput) (*domain.ShippingQuote, error)
}

type ShippingHandler struct {
	shippingService Service
}

func New(shippingService Service) *ShippingHandler {
	return &ShippingHandler{
		shippingService: shippingService,
	}
}

// Quote godoc
//
//	@Summary		Calculate a shipping quote
//	@Description	Price a shipment from its weight, dimensions and declared value. Chargeable weight is the greater of actual and volumetric weight; import duty applies to domestic-bound shipments only.
//	@Tags			Доставка
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ShippingQuoteRequestDTO		true	"Shipment parameters"
//	@Success		200		{object}	dto.ShippingQuoteResponseDTO	"Calculated quote"
//	@Failure		400		{object}	utils.Response					"Validation failed"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/shipping/quote [post]
func (h *ShippingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.ShippingQuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.shippingService.Quote(r.Context(), shippingservice.QuoteInput{
		FromCountry:  req.FromCountry,
		ToCountry:    req.ToCountry,
		WeightKg:     req.WeightKg,
		LengthCm:     req.Dimensions.LengthCm,
		WidthCm:      req.Dimensions.WidthCm,
		HeightCm:     req.Dimensions.HeightCm,
		ValueRub:     req.ValueRub,
		Contents:     req.Contents,
		ServiceLevel: req.ServiceLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, shippingservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ShippingQuoteResponseDTO{
		QuoteID:            quote.ID.String(),
		ChargeableWeightKg: quote.ChargeableWeightKg,
		BaseCostRub:        quote.BaseCostRub,
		DutyEstimateRub:    quote.DutyRub,
		TotalCostRub:       quote.TotalCostRub,
		EstimatedDays:      quote.EstimatedDays,
		Carrier:            quote.Carrier,
		InsuranceIncluded:  quote.InsuranceIncluded,
	})
}
