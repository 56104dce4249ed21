package repository

import (
	"context"
	"time"

	"toolroom-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int64) (*domain.Tool, error)
	// GetByIDForUpdate locks the tool row for the duration of the enclosing
	// store transaction. Only meaningful inside Store.WithTx.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Tool, error)
	GetByAssetTag(ctx context.Context, assetTag string) (*domain.Tool, error)
	List(ctx context.Context, search string) ([]domain.Tool, error)
	ListByStatus(ctx context.Context, status domain.ToolStatus, limit int) ([]domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	UpdateStatus(ctx context.Context, id int64, status domain.ToolStatus) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ToolStatus) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	// List returns all transactions joined with tool and user display fields,
	// newest first.
	List(ctx context.Context) ([]domain.TransactionRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.TransactionRecord, error)
	// ListOpenOverdue returns open checkout transactions whose expected return
	// date lies before now.
	ListOpenOverdue(ctx context.Context, now time.Time) ([]domain.TransactionRecord, error)
	Count(ctx context.Context) (int64, error)
}

// Store aggregates the repositories plus transactional execution. WithTx runs
// fn against a store bound to a single database transaction, so the checkout
// dual write (insert transaction row, flip tool status) is all-or-nothing.
type Store interface {
	Users() UserRepository
	Categories() CategoryRepository
	Tools() ToolRepository
	Transactions() TransactionRepository
	WithTx(ctx context.Context, fn func(Store) error) error
}
