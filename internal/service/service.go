package service

import (
	"context"
	"time"

	"toolroom-backend/internal/domain"
)

type AuthService interface {
	// Login verifies credentials and returns the user plus an access token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetMe(ctx context.Context, userID int64) (*domain.User, error)
}

type UserService interface {
	CreateUser(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, name, email string, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type ToolService interface {
	CreateTool(ctx context.Context, tool *domain.Tool) (*domain.Tool, error)
	GetTool(ctx context.Context, id int64) (*domain.Tool, error)
	ListTools(ctx context.Context, search string) ([]domain.Tool, error)
	UpdateTool(ctx context.Context, tool *domain.Tool) (*domain.Tool, error)
	DeleteTool(ctx context.Context, id int64) error
	SetImagePath(ctx context.Context, id int64, imagePath string) error
}

// TransactionService is the checkout/checkin engine.
type TransactionService interface {
	// Checkout opens a transaction for the tool and flips its status to
	// Checked Out. Fails with ErrNotFound when the tool or user is missing and
	// ErrConflict when the tool is not checkout-able.
	Checkout(ctx context.Context, toolID, userID int64, expectedReturnDate *time.Time, notes string) (*domain.TransactionView, error)
	// Checkin stamps the return date on an open checkout transaction and
	// restores the tool to Available. Fails with ErrConflict when the
	// transaction was already checked in.
	Checkin(ctx context.Context, transactionID int64, notes string) (*domain.TransactionView, error)
	// List returns all transactions newest first, with display status freshly
	// resolved so an overdue checkout reads "Overdue" even before the nightly
	// sweep has touched the cached tool status.
	List(ctx context.Context) ([]domain.TransactionView, error)
}

// OverdueService reconciles cached tool statuses with lapsed due dates.
type OverdueService interface {
	// Sweep marks tools with lapsed open checkouts as Overdue and returns the
	// number of tools mutated. Per-tool failures are logged and skipped, never
	// aborting the sweep.
	Sweep(ctx context.Context) (int, error)
	// ResetIfOverdue flips an Overdue tool back to Available, reporting
	// whether a change was made.
	ResetIfOverdue(ctx context.Context, toolID int64) (bool, error)
	// ListOverdueHolders returns the open overdue transactions joined with
	// holder contact details, for the reminder job.
	ListOverdueHolders(ctx context.Context) ([]domain.TransactionRecord, error)
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	GetOverdueTools(ctx context.Context, limit int) ([]domain.Tool, error)
	GetRecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}

// DashboardStats aggregates the cached tool status counts. Counts can lag the
// true state between sweeps; the transaction list view is the authoritative
// source for per-transaction status.
type DashboardStats struct {
	TotalTools         int64 `json:"total_tools"`
	ToolsAvailable     int64 `json:"tools_available"`
	ToolsCheckedOut    int64 `json:"tools_checked_out"`
	ToolsOverdue       int64 `json:"tools_overdue"`
	TotalUsers         int64 `json:"total_users"`
	RecentTransactions int64 `json:"recent_transactions"`
}

// ActivityEntry is one row of the dashboard activity feed.
type ActivityEntry struct {
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, email, userName, toolName string, dueDate time.Time) error
}
