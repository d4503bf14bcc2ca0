package service

import (
	"github.com/nstoliar/escrowd/internal/handlers/bookings"
	"github.com/nstoliar/escrowd/internal/handlers/groupbuy"
	"github.com/nstoliar/escrowd/internal/handlers/payments"
	"github.com/nstoliar/escrowd/internal/handlers/shipping"

	"github.com/nstoliar/escrowd/internal/provider"
	"github.com/nstoliar/escrowd/internal/rates"
	"github.com/nstoliar/escrowd/internal/repo"
	bookingservice "github.com/nstoliar/escrowd/internal/service/bookingservice"
	groupbuyservice "github.com/nstoliar/escrowd/internal/service/groupbuyservice"
	paymentservice "github.com/nstoliar/escrowd/internal/service/paymentservice"
	shippingservice "github.com/nstoliar/escrowd/internal/service/shippingservice"
)

type Services struct {
	PaymentService  payments.Service
	GroupBuyService groupbuy.Service
	BookingService  bookings.Service
	ShippingService shipping.Service
}

func New(repo *repo.Repositories, providers *provider.Registry, rateSource rates.Source, domesticCountry string) *Services {
	paymentService := paymentservice.New(repo.PaymentRepo, repo.OrderRepo, repo.LedgerRepo, providers, rateSource)
	groupBuyService := groupbuyservice.New(repo.GroupBuyRepo, repo.OrderRepo)
	bookingService := bookingservice.New(repo.BookingRepo, repo.OrderRepo, repo.PaymentRepo, repo.LedgerRepo)
	shippingService := shippingservice.New(repo.QuoteRepo, domesticCountry)

	return &Services{
		PaymentService:  paymentService,
		GroupBuyService: groupBuyService,
		BookingService:  bookingService,
		ShippingService: shippingService,
	}
}
