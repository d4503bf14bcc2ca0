package repo

import (
	"github.com/nstoliar/escrowd/internal/pg"
	bookingrepo "github.com/nstoliar/escrowd/internal/repo/booking-repo"
	groupbuyrepo "github.com/nstoliar/escrowd/internal/repo/groupbuy-repo"
	ledgerrepo "github.com/nstoliar/escrowd/internal/repo/ledger-repo"
	orderrepo "github.com/nstoliar/escrowd/internal/repo/order-repo"
	paymentrepo "github.com/nstoliar/escrowd/internal/repo/payment-repo"
	quoterepo "github.com/nstoliar/escrowd/internal/repo/quote-repo"
)

type Repositories struct {
	PaymentRepo  *paymentrepo.Repository
	OrderRepo    *orderrepo.Repository
	GroupBuyRepo *groupbuyrepo.Repository
	BookingRepo  *bookingrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	QuoteRepo    *quoterepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PaymentRepo:  paymentrepo.New(conn, txManager),
		OrderRepo:    orderrepo.New(conn, txManager),
		GroupBuyRepo: groupbuyrepo.New(conn, txManager),
		BookingRepo:  bookingrepo.New(conn, txManager),
		LedgerRepo:   ledgerrepo.New(conn),
		QuoteRepo:    quoterepo.New(conn),
	}
}
