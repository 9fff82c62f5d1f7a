package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicate reports that a store-level uniqueness or exclusion constraint rejected a write.
var ErrDuplicate = errors.New("duplicate entity")

const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

type txKey struct{}

// Transactor opens request-scoped units of work. Repositories called with the
// returned context run inside the same transaction.
type Transactor struct {
	db *sqlx.DB
}

// NewTransactor constructs a Transactor.
func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx runs fn inside a read-committed transaction, committing when fn
// returns nil and rolling back otherwise. Nested calls join the outer transaction.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}
	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", mapConstraintError(err))
	}
	return nil
}

// base resolves the executor for a call: the ambient transaction if any, else the pool.
type base struct {
	db *sqlx.DB
}

func (b base) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return b.db
}

func (b base) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, b.ext(ctx), dest, query, args...)
}

func (b base) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return sqlx.SelectContext(ctx, b.ext(ctx), dest, query, args...)
}

func (b base) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var one int
	if err := b.get(ctx, &one, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (b base) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	res, err := b.ext(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	return res, nil
}

// mapConstraintError folds Postgres constraint violations into ErrDuplicate.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation, pqExclusionViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Constraint)
		}
	}
	return err
}
