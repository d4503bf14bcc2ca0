package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nstoliar/escrowd/internal/pg"
	"github.com/nstoliar/escrowd/internal/provider"
	"github.com/nstoliar/escrowd/internal/rates"
	"github.com/nstoliar/escrowd/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := repo.New(mockDB, mockTxManager)
	registry := provider.DefaultRegistry("http://localhost:8082", nil)
	rateSource := rates.NewClient("http://localhost:8081", nil)

	services := New(repos, registry, rateSource, "RU")

	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.GroupBuyService)
	assert.NotNil(t, services.BookingService)
	assert.NotNil(t, services.ShippingService)
}
