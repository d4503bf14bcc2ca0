package ledgerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/nstoliar/escrowd/internal/domain"
	"github.com/nstoliar/escrowd/internal/pg"
)

// Repository owns the append-only payout ledger and its retry task queue.
// Entries are never updated or deleted; the idempotency key makes a retried
// append a no-op instead of a double credit.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, entry *domain.PayoutLedgerEntry) error {
	query := `
		INSERT INTO payout_ledger (user_id, order_id, amount_rub, type, idempotency_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (idempotency_key) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, entry.UserID, entry.OrderID, entry.AmountRub, entry.Type, entry.IdempotencyKey)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetEntriesByOrderID(ctx context.Context, orderID int64) ([]domain.PayoutLedgerEntry, error) {
	query := `
        SELECT id, user_id, order_id, amount_rub, type, idempotency_key, created_at
        FROM payout_ledger
        WHERE order_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PayoutLedgerEntry
	for rows.Next() {
		var entry domain.PayoutLedgerEntry
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.OrderID, &entry.AmountRub,
			&entry.Type, &entry.IdempotencyKey, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *Repository) EnqueueTask(ctx context.Context, task *domain.PayoutTask) error {
	query := `
		INSERT INTO payout_tasks (idempotency_key, user_id, order_id, amount_rub, entry_type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (idempotency_key) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, task.IdempotencyKey, task.UserID, task.OrderID,
		task.AmountRub, task.EntryType, domain.TaskPending)
	if err != nil {
		zap.L().Error("can't enqueue payout task", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindPendingTasks(ctx context.Context, limit uint32) ([]domain.PayoutTask, error) {
	query := `
        SELECT id, idempotency_key, user_id, order_id, amount_rub, entry_type, status, attempts, created_at
        FROM payout_tasks
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, domain.TaskPending, int(limit))
	if err != nil {
		zap.L().Error("can't get payout tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.PayoutTask
	for rows.Next() {
		var task domain.PayoutTask
		err := rows.Scan(&task.ID, &task.IdempotencyKey, &task.UserID, &task.OrderID,
			&task.AmountRub, &task.EntryType, &task.Status, &task.Attempts, &task.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payout task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *Repository) MarkTaskDone(ctx context.Context, taskID int64) error {
	query := `
        UPDATE payout_tasks
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.TaskDone, taskID)
	if err != nil {
		zap.L().Error("failed to mark payout task done", zap.Error(err))
		return err
	}
	return nil
}

// MarkTaskFailed bumps the attempt counter; once dead the worker stops
// retrying and the task is left for operator review.
func (r *Repository) MarkTaskFailed(ctx context.Context, taskID int64, dead bool) error {
	status := domain.TaskPending
	if dead {
		status = domain.TaskDead
	}
	query := `
        UPDATE payout_tasks
        SET status = $1, attempts = attempts + 1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, taskID)
	if err != nil {
		zap.L().Error("failed to mark payout task failed", zap.Error(err))
		return err
	}
	return nil
}
