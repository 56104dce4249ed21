package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"

	"github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Every
// repository is written against it so the same code runs standalone or
// inside Store.WithTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db           *sql.DB
	users        repository.UserRepository
	categories   repository.CategoryRepository
	tools        repository.ToolRepository
	transactions repository.TransactionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		users:        NewUserRepository(db),
		categories:   NewCategoryRepository(db),
		tools:        NewToolRepository(db),
		transactions: NewTransactionRepository(db),
	}
}

func (s *Store) Users() repository.UserRepository               { return s.users }
func (s *Store) Categories() repository.CategoryRepository      { return s.categories }
func (s *Store) Tools() repository.ToolRepository               { return s.tools }
func (s *Store) Transactions() repository.TransactionRepository { return s.transactions }

// WithTx runs fn against a store whose repositories share one database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txStore := &Store{
		db:           s.db,
		users:        NewUserRepository(tx),
		categories:   NewCategoryRepository(tx),
		tools:        NewToolRepository(tx),
		transactions: NewTransactionRepository(tx),
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}

// translate maps driver errors to the domain taxonomy: missing rows become
// ErrNotFound and unique violations become ErrConflict. The partial unique
// index on open transactions surfaces the double-checkout race here as a
// Conflict instead of a second open row.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("%s", entity)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.Conflictf("%s: duplicate value for %q", entity, pqErr.Constraint)
	}
	return err
}
