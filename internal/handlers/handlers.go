package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nstoliar/escrowd/docs"
	bookingshandlers "github.com/nstoliar/escrowd/internal/handlers/bookings"
	groupbuyhandlers "github.com/nstoliar/escrowd/internal/handlers/groupbuy"
	paymentshandlers "github.com/nstoliar/escrowd/internal/handlers/payments"
	shippinghandlers "github.com/nstoliar/escrowd/internal/handlers/shipping"
	"github.com/nstoliar/escrowd/internal/service"
	"github.com/nstoliar/escrowd/pkg/auth"
)

type PaymentHandler interface {
	Authorize(w http.ResponseWriter, r *http.Request)
	Capture(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
}

type GroupBuyHandler interface {
	CloseDeal(w http.ResponseWriter, r *http.Request)
	GetDeal(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	CompleteBooking(w http.ResponseWriter, r *http.Request)
}

type ShippingHandler interface {
	Quote(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PaymentHandler  PaymentHandler
	GroupBuyHandler GroupBuyHandler
	BookingHandler  BookingHandler
	ShippingHandler ShippingHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PaymentHandler:  paymentshandlers.New(s.PaymentService),
		GroupBuyHandler: groupbuyhandlers.New(s.GroupBuyService),
		BookingHandler:  bookingshandlers.New(s.BookingService),
		ShippingHandler: shippinghandlers.New(s.ShippingService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/payments", func(r chi.Router) {
				r.Post("/authorize", h.PaymentHandler.Authorize)
				r.Post("/capture", h.PaymentHandler.Capture)
				r.Post("/refund", h.PaymentHandler.Refund)
				r.Get("/{paymentID}", h.PaymentHandler.GetPayment)
			})
			r.Route("/group-buys", func(r chi.Router) {
				r.Post("/close", h.GroupBuyHandler.CloseDeal)
				r.Get("/{dealID}", h.GroupBuyHandler.GetDeal)
			})
			r.Post("/bookings/complete", h.BookingHandler.CompleteBooking)
			r.Post("/shipping/quote", h.ShippingHandler.Quote)
		})
	})

	return r
}
