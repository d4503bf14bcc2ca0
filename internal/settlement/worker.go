package settlement

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nstoliar/escrowd/internal/domain"
)

const maxAttempts = 3

var inflightTasks sync.Map

type LedgerRepo interface {
	FindPendingTasks(ctx context.Context, limit uint32) ([]domain.PayoutTask, error)
	Append(ctx context.Context, entry *domain.PayoutLedgerEntry) error
	MarkTaskDone(ctx context.Context, taskID int64) error
	MarkTaskFailed(ctx context.Context, taskID int64, dead bool) error
}

// Service drains the payout retry queue: ledger appends that failed inline
// during a settlement operation are re-attempted here. The ledger idempotency
// key makes a replayed append a no-op, so at-least-once delivery is safe.
type Service struct {
	ledgerRepo     LedgerRepo
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(ledgerRepo LedgerRepo) *Service {
	return &Service{
		ledgerRepo:     ledgerRepo,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement retry worker started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement worker")
			return
		case <-ticker.C:
			s.processTasks(ctx)
		}
	}
}

func (s *Service) processTasks(ctx context.Context) {
	tasks, err := s.ledgerRepo.FindPendingTasks(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch payout tasks", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, task := range tasks {
		task := task

		if _, loaded := inflightTasks.LoadOrStore(task.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflightTasks.Delete(task.ID)
				return s.handleTask(ctx, task)
			})
			if err != nil {
				inflightTasks.Delete(task.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing payout tasks", zap.Error(err))
	}
}

func (s *Service) handleTask(ctx context.Context, task domain.PayoutTask) error {
	entry := &domain.PayoutLedgerEntry{
		UserID:         task.UserID,
		OrderID:        task.OrderID,
		AmountRub:      task.AmountRub,
		Type:           task.EntryType,
		IdempotencyKey: task.IdempotencyKey,
	}
	if err := s.ledgerRepo.Append(ctx, entry); err != nil {
		dead := task.Attempts+1 >= maxAttempts
		if dead {
			zap.L().Error("Payout task exhausted retries",
				zap.Int64("task_id", task.ID), zap.String("key", task.IdempotencyKey))
		}
		if failErr := s.ledgerRepo.MarkTaskFailed(ctx, task.ID, dead); failErr != nil {
			return fmt.Errorf("failed to record task failure %d: %w", task.ID, failErr)
		}
		return fmt.Errorf("failed to replay ledger append for task %d: %w", task.ID, err)
	}

	if err := s.ledgerRepo.MarkTaskDone(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to mark task %d done: %w", task.ID, err)
	}
	return nil
}
