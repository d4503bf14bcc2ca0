package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nstoliar/escrowd/internal/pg"
	bookingrepo "github.com/nstoliar/escrowd/internal/repo/booking-repo"
	groupbuyrepo "github.com/nstoliar/escrowd/internal/repo/groupbuy-repo"
	ledgerrepo "github.com/nstoliar/escrowd/internal/repo/ledger-repo"
	orderrepo "github.com/nstoliar/escrowd/internal/repo/order-repo"
	paymentrepo "github.com/nstoliar/escrowd/internal/repo/payment-repo"
	quoterepo "github.com/nstoliar/escrowd/internal/repo/quote-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.GroupBuyRepo)
	assert.NotNil(t, repo.BookingRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.QuoteRepo)

	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &groupbuyrepo.Repository{}, repo.GroupBuyRepo)
	assert.IsType(t, &bookingrepo.Repository{}, repo.BookingRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &quoterepo.Repository{}, repo.QuoteRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
