package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/logger"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// Option configures a repository.
type Option func(*base)

// WithTxGetter makes the repository run inside the transaction found in the context.
func WithTxGetter(txGetter TxGetter) Option {
	return func(b *base) { b.txGetter = txGetter }
}

// WithTimeout bounds every query. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(b *base) { b.timeout = timeout }
}

type base struct {
	db       *sqlx.DB
	txGetter TxGetter
	timeout  time.Duration
}

func newBase(db *sqlx.DB, opts ...Option) base {
	b := base{db: db}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b base) executor(ctx context.Context) sqlx.ExtContext {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return b.db
}

func (b base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.timeout)
}

// mapError translates driver errors into apperror kinds.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return apperror.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", apperror.ErrTimeout, err)
	default:
		return err
	}
}

// logQuery logs query in a single line with its args, result and error
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// exec runs a statement that returns no rows. logArgs replaces args in the log line.
func (b base) exec(ctx context.Context, query string, logArgs []any, args ...any) error {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	res, err := b.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, logArgs, rowsAffected, err)

	return mapError(err)
}
