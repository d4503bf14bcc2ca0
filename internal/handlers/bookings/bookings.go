package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/nstoliar/escrowd/internal/dto"
	bookingservice "github.com/nstoliar/escrowd/internal/service/bookingservice"
	"github.com/nstoliar/escrowd/pkg/utils"
	"github.com/nstoliar/escrowd/pkg/validate"
)

type Service interface {
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*bookingservice.CompleteBookingResult, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CompleteBooking godoc
//
//	@Summary		Complete a service booking
//	@Description	Mark a confirmed booking as rendered: the booking flips to COMPLETED, its escrow is released and the provider is credited.
//	@Tags			Бронирования
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CompleteBookingRequestDTO	true	"Booking to complete"
//	@Success		200		{object}	dto.CompleteBookingResponseDTO	"Booking completed"
//	@Failure		400		{object}	utils.Response					"Booking not in CONFIRMED state"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Booking not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/bookings/complete [post]
func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	result, err := h.bookingService.CompleteBooking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, bookingservice.ErrInvalidState):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteBookingResponseDTO{
		BookingID:    result.BookingID.String(),
		OrderID:      result.OrderID,
		Status:       result.Status,
		EscrowStatus: result.EscrowStatus,
		Amount:       result.AmountRub,
	})
}
