package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nstoliar/escrowd/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	entry := &domain.PayoutLedgerEntry{
		UserID:         uuid.New(),
		OrderID:        42,
		AmountRub:      1500,
		Type:           domain.EntryCredit,
		IdempotencyKey: "key:refund:buyer",
	}

	query := regexp.QuoteMeta(`
		INSERT INTO payout_ledger (user_id, order_id, amount_rub, type, idempotency_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (idempotency_key) DO NOTHING
	`)

	t.Run("First append inserts", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entry.UserID, entry.OrderID, entry.AmountRub, entry.Type, entry.IdempotencyKey).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Append(context.Background(), entry)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate key is a silent no-op", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entry.UserID, entry.OrderID, entry.AmountRub, entry.Type, entry.IdempotencyKey).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		err := repo.Append(context.Background(), entry)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(entry.UserID, entry.OrderID, entry.AmountRub, entry.Type, entry.IdempotencyKey).
			WillReturnError(errors.New("database error"))

		err := repo.Append(context.Background(), entry)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetEntriesByOrderID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	createdAt := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, user_id, order_id, amount_rub, type, idempotency_key, created_at
        FROM payout_ledger
        WHERE order_id = $1
        ORDER BY created_at ASC
    `)

	t.Run("Returns entries in order", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "order_id", "amount_rub", "type", "idempotency_key", "created_at"}).
			AddRow(int64(1), userID, int64(42), int64(1500), domain.EntryCredit, "k1", createdAt).
			AddRow(int64(2), userID, int64(42), int64(1500), domain.EntryDebit, "k2", createdAt)
		mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnRows(rows)

		entries, err := repo.GetEntriesByOrderID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, domain.EntryCredit, entries[0].Type)
		assert.Equal(t, domain.EntryDebit, entries[1].Type)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnError(errors.New("database error"))

		entries, err := repo.GetEntriesByOrderID(context.Background(), 42)
		assert.Error(t, err)
		assert.Nil(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_EnqueueTask(t *testing.T) {
	repo, mock := NewMock(t)
	task := &domain.PayoutTask{
		IdempotencyKey: "key:refund:buyer",
		UserID:         uuid.New(),
		OrderID:        42,
		AmountRub:      1500,
		EntryType:      domain.EntryCredit,
	}

	query := regexp.QuoteMeta(`
		INSERT INTO payout_tasks (idempotency_key, user_id, order_id, amount_rub, entry_type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (idempotency_key) DO NOTHING
	`)

	mock.ExpectExec(query).
		WithArgs(task.IdempotencyKey, task.UserID, task.OrderID, task.AmountRub, task.EntryType, domain.TaskPending).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.EnqueueTask(context.Background(), task)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindPendingTasks(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	createdAt := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, idempotency_key, user_id, order_id, amount_rub, entry_type, status, attempts, created_at
        FROM payout_tasks
        WHERE status = $1
        ORDER BY created_at ASC
        LIMIT $2
    `)

	rows := pgxmock.NewRows([]string{"id", "idempotency_key", "user_id", "order_id", "amount_rub", "entry_type", "status", "attempts", "created_at"}).
		AddRow(int64(7), "k1", userID, int64(42), int64(1500), domain.EntryCredit, domain.TaskPending, 1, createdAt)
	mock.ExpectQuery(query).WithArgs(domain.TaskPending, 100).WillReturnRows(rows)

	tasks, err := repo.FindPendingTasks(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, int64(7), tasks[0].ID)
	assert.Equal(t, 1, tasks[0].Attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkTaskFailed(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE payout_tasks
        SET status = $1, attempts = attempts + 1
        WHERE id = $2
    `)

	t.Run("Retryable failure stays pending", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(domain.TaskPending, int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkTaskFailed(context.Background(), 7, false)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exhausted task goes dead", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(domain.TaskDead, int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkTaskFailed(context.Background(), 7, true)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
