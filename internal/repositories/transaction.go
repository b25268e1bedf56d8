package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"heritage-server/internal/interfaces"
	"heritage-server/internal/utils"
)

// withTransaction runs fn in a transaction. It is rolled back when fn or the commit fails.
func withTransaction(ctx context.Context, pool interfaces.PgxPoolIface, fn func(tx pgx.Tx) error) error {
	utils.LogMessageWithFields(ctx, "debug", "Beginning transaction...")
	tx, err := pool.Begin(ctx)
	if err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error beginning transaction", err)
		return err
	}

	if err := fn(tx); err != nil {
		rollbackTransaction(ctx, tx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error committing transaction", err)
		rollbackTransaction(ctx, tx)
		return err
	}

	utils.LogMessageWithFields(ctx, "debug", "Transaction committed")
	return nil
}

func rollbackTransaction(ctx context.Context, tx pgx.Tx) {
	utils.LogMessageWithFields(ctx, "debug", "Rolling back transaction...")
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		utils.LogMessageWithFieldsAndError(ctx, "error", "Error rolling back transaction", err)
		return
	}
	utils.LogMessageWithFields(ctx, "debug", "Transaction rolled back")
}
