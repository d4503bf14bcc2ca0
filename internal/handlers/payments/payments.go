package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/dto"
	paymentservice "github.com/nstoliar/escrowd/internal/service/paymentservice"
	"github.com/nstoliar/escrowd/pkg/utils"
	"github.com/nstoliar/escrowd/pkg/validate"
)

type Service interface {
	Authorize(ctx context.Context, in paymentservice.AuthorizeInput) (*domain.Payment, string, error)
	Capture(ctx context.Context, paymentID uuid.UUID, amountRub *int64) (*domain.Payment, error)
	Refund(ctx context.Context, paymentID uuid.UUID, reason string) (*domain.Payment, error)
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Authorize godoc
//
//	@Summary		Authorize a payment
//	@Description	Place a hold for the given amount with the selected payment provider. The returned client secret is transient and never stored.
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AuthorizeRequestDTO	true	"Authorization payload"
//	@Success		200		{object}	dto.AuthorizeResponseDTO	"Payment authorized"
//	@Failure		400		{object}	utils.Response				"Validation failed or provider unsupported"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/payments/authorize [post]
func (h *PaymentHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthorizeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	payment, clientSecret, err := h.paymentService.Authorize(r.Context(), paymentservice.AuthorizeInput{
		AmountRub:   req.AmountRub,
		Currency:    req.Currency,
		Provider:    req.Provider,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrValidation),
			errors.Is(err, paymentservice.ErrProviderUnsupported):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthorizeResponseDTO{
		PaymentID:    payment.ID.String(),
		ProviderRef:  payment.ProviderRef,
		ClientSecret: clientSecret,
		Status:       payment.Status,
	})
}

// Capture godoc
//
//	@Summary		Capture an authorized payment
//	@Description	Settle a previously authorized hold, in full or for a smaller amount. Capture is final for the payment's lifecycle.
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CaptureRequestDTO	true	"Capture payload"
//	@Success		200		{object}	dto.CaptureResponseDTO	"Payment captured"
//	@Failure		400		{object}	utils.Response			"Invalid state or amount"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Payment not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/capture [post]
func (h *PaymentHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var req dto.CaptureRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.paymentService.Capture(r.Context(), paymentID, req.AmountRub)
	if err != nil {
		respondPaymentError(w, err)
		return
	}

	captureRef, _ := payment.Metadata["capture_ref"].(string)
	utils.RespondWithJSON(w, http.StatusOK, dto.CaptureResponseDTO{
		PaymentID:      payment.ID.String(),
		CaptureRef:     captureRef,
		CapturedAmount: capturedAmount(payment),
		Status:         payment.Status,
	})
}

// Refund godoc
//
//	@Summary		Refund a payment
//	@Description	Return funds to the buyer. Authorized holds are voided, captured payments are reversed with compensating ledger entries.
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RefundRequestDTO	true	"Refund payload"
//	@Success		200		{object}	dto.RefundResponseDTO	"Payment refunded"
//	@Failure		400		{object}	utils.Response			"Invalid state or already refunded"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Payment not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/refund [post]
func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	var req dto.RefundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.paymentService.Refund(r.Context(), paymentID, req.Reason)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	reason, _ := payment.Metadata["refund_reason"].(string)
	utils.RespondWithJSON(w, http.StatusOK, dto.RefundResponseDTO{
		PaymentID: payment.ID.String(),
		Status:    payment.Status,
		Reason:    reason,
	})
}

// GetPayment godoc
//
//	@Summary		Get payment details
//	@Description	Fetch a single payment by its identifier.
//	@Tags			Платежи
//	@Security		BearerAuth
//	@Produce		json
//	@Param			paymentID	path		string					true	"Payment UUID"
//	@Success		200			{object}	dto.PaymentResponseDTO	"Payment details"
//	@Failure		400			{object}	utils.Response			"Invalid payment id"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Payment not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/payments/{paymentID} [get]
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(chi.URLParam(r, "paymentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.paymentService.GetPayment(r.Context(), paymentID)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{
		PaymentID:   payment.ID.String(),
		Provider:    payment.Provider,
		ProviderRef: payment.ProviderRef,
		AmountRub:   payment.AmountRub,
		Currency:    payment.Currency,
		Status:      payment.Status,
		Metadata:    payment.Metadata,
		ProcessedAt: payment.ProcessedAt,
	})
}

func respondPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, paymentservice.ErrPaymentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrInvalidState),
		errors.Is(err, paymentservice.ErrAmountExceeded),
		errors.Is(err, paymentservice.ErrAlreadyRefunded),
		errors.Is(err, paymentservice.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Metadata values survive a JSON round trip as float64, so the captured
// amount is read with both numeric shapes in mind.
func capturedAmount(payment *domain.Payment) int64 {
	switch v := payment.Metadata["captured_amount"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return payment.AmountRub
	}
}
