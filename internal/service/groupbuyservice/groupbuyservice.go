package groupbuyservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nstoliar/escrowd/internal/domain"
)

type Repo interface {
	GetDeal(ctx context.Context, dealID int64) (*domain.GroupBuyDeal, error)
	CompleteAndReprice(ctx context.Context, dealID, discountedPrice, discountPerUnit int64) ([]domain.GroupBuyOrder, bool, error)
	ListOrders(ctx context.Context, dealID int64) ([]domain.GroupBuyOrder, error)
	LinkOrder(ctx context.Context, pledgeID, orderID int64) error
}

type OrderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
}

type Service struct {
	repo      Repo
	orderRepo OrderRepo
}

func New(repo Repo, orderRepo OrderRepo) *Service {
	return &Service{
		repo:      repo,
		orderRepo: orderRepo,
	}
}

var (
	ErrDealNotFound    = errors.New("deal not found")
	ErrInvalidState    = errors.New("invalid deal state")
	ErrThresholdNotMet = errors.New("minimum quantity not met")
)

type CloseDealResult struct {
	DealID             int64
	Status             string
	TotalOrders        int
	DiscountPercentage int
	OriginalPrice      int64
	DiscountedPrice    int64
	TotalSavings       int64
}

type DealInfo struct {
	Deal    *domain.GroupBuyDeal
	Pledges []domain.GroupBuyOrder
}

// CloseDeal converts the deal's pending pledges into discounted orders.
// The deal flip and the pledge batch confirm are one transaction; per-pledge
// order creation is best-effort, so TotalOrders can undercount the confirmed
// pledges. The deal stays COMPLETED either way, pending product sign-off on
// hardening this to full atomicity.
func (s *Service) CloseDeal(ctx context.Context, dealID int64) (*CloseDealResult, error) {
	deal, err := s.repo.GetDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	if deal.Status != domain.DealActive {
		return nil, fmt.Errorf("%w: deal is %s, want %s", ErrInvalidState, deal.Status, domain.DealActive)
	}
	if deal.CurrentQuantity < deal.MinQuantity {
		return nil, fmt.Errorf("%w: have %d of %d", ErrThresholdNotMet, deal.CurrentQuantity, deal.MinQuantity)
	}

	discountPerUnit := int64(math.Round(float64(deal.PricePerUnitRub) * float64(deal.DiscountPercentage) / 100))
	discountedPrice := deal.PricePerUnitRub - discountPerUnit

	confirmed, completed, err := s.repo.CompleteAndReprice(ctx, dealID, discountedPrice, discountPerUnit)
	if err != nil {
		return nil, err
	}
	if !completed {
		// Lost a concurrent close.
		return nil, fmt.Errorf("%w: deal is no longer %s", ErrInvalidState, domain.DealActive)
	}

	var created int64
	var totalSavings int64
	var g errgroup.Group
	for _, pledge := range confirmed {
		pledge := pledge
		totalSavings += pledge.DiscountAmountRub

		g.Go(func() error {
			order := &domain.Order{
				BuyerID:         pledge.BuyerID,
				SellerID:        deal.SellerID,
				VendorProductID: &deal.VendorProductID,
				PaymentID:       pledge.PaymentID,
				Status:          domain.OrderPending,
				EscrowStatus:    domain.EscrowHeld,
				TotalAmountRub:  pledge.TotalAmountRub,
				EscrowAmountRub: pledge.TotalAmountRub,
			}
			if err := s.orderRepo.Create(ctx, order); err != nil {
				zap.L().Error("failed to create order for pledge",
					zap.Int64("deal_id", dealID), zap.Int64("pledge_id", pledge.ID), zap.Error(err))
				return nil
			}
			atomic.AddInt64(&created, 1)
			if err := s.repo.LinkOrder(ctx, pledge.ID, order.ID); err != nil {
				zap.L().Error("failed to back-link order to pledge",
					zap.Int64("pledge_id", pledge.ID), zap.Int64("order_id", order.ID), zap.Error(err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("error creating orders for deal", zap.Int64("deal_id", dealID), zap.Error(err))
	}

	return &CloseDealResult{
		DealID:             dealID,
		Status:             domain.DealCompleted,
		TotalOrders:        int(created),
		DiscountPercentage: deal.DiscountPercentage,
		OriginalPrice:      deal.PricePerUnitRub,
		DiscountedPrice:    discountedPrice,
		TotalSavings:       totalSavings,
	}, nil
}

func (s *Service) GetDeal(ctx context.Context, dealID int64) (*DealInfo, error) {
	deal, err := s.repo.GetDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	pledges, err := s.repo.ListOrders(ctx, dealID)
	if err != nil {
		zap.L().Error("failed to list pledges", zap.Int64("deal_id", dealID), zap.Error(err))
		return nil, err
	}
	return &DealInfo{Deal: deal, Pledges: pledges}, nil
}
