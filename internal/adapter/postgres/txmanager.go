package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxTxAttempts = 3

// TxManager runs functions inside a transaction carried by the context.
// Repositories pick the transaction up through QuerierFromCtx.
type TxManager struct {
	pool     *pgxpool.Pool
	attempts int
}

// NewTxManager creates a TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool, attempts: maxTxAttempts}
}

// RunInTx runs fn in a Read Committed transaction. A ctx that already
// carries a transaction is joined and the outermost call commits.
// The outermost call reruns fn when the transaction fails with a
// serialization failure or deadlock. fn's error is returned unchanged; a
// panic rolls back and propagates.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	return retryTx(ctx, m.attempts, func() error {
		return pgx.BeginTxFunc(ctx, m.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
			return fn(withTx(ctx, tx))
		})
	})
}

func retryTx(ctx context.Context, attempts int, run func() error) error {
	var err error
	for range max(attempts, 1) {
		err = run()
		if err == nil || !isRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}
