package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"toolroom-backend/internal/domain"
)

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()
	toolRepo := new(MockToolRepo)
	userRepo := new(MockUserRepo)
	txRepo := new(MockTransactionRepo)
	svc := NewDashboardService(toolRepo, userRepo, txRepo)

	toolRepo.On("Count", ctx).Return(int64(40), nil)
	toolRepo.On("CountByStatus", ctx, domain.ToolStatusAvailable).Return(int64(25), nil)
	toolRepo.On("CountByStatus", ctx, domain.ToolStatusCheckedOut).Return(int64(10), nil)
	toolRepo.On("CountByStatus", ctx, domain.ToolStatusOverdue).Return(int64(3), nil)
	userRepo.On("Count", ctx).Return(int64(12), nil)
	txRepo.On("Count", ctx).Return(int64(120), nil)

	stats, err := svc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(40), stats.TotalTools)
	assert.Equal(t, int64(25), stats.ToolsAvailable)
	assert.Equal(t, int64(10), stats.ToolsCheckedOut)
	assert.Equal(t, int64(3), stats.ToolsOverdue)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(120), stats.RecentTransactions)
}

func TestDashboardService_GetRecentActivity(t *testing.T) {
	ctx := context.Background()
	toolRepo := new(MockToolRepo)
	userRepo := new(MockUserRepo)
	txRepo := new(MockTransactionRepo)
	svc := NewDashboardService(toolRepo, userRepo, txRepo)

	now := time.Date(2025, 6, 20, 9, 30, 0, 0, time.UTC)
	returned := now.Add(-time.Hour)
	records := []domain.TransactionRecord{
		{
			Transaction: domain.Transaction{ID: 2, Type: domain.TransactionTypeCheckout, CreatedOn: now},
			ToolName:    "Impact Driver", UserName: "Dana",
		},
		{
			Transaction: domain.Transaction{ID: 1, Type: domain.TransactionTypeCheckout, ActualReturnDate: &returned, CreatedOn: now.Add(-2 * time.Hour)},
			ToolName:    "", UserName: "",
		},
	}
	txRepo.On("Recent", ctx, 10).Return(records, nil)

	entries, err := svc.GetRecentActivity(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.Equal(t, "Tool Checked Out", entries[0].Action)
	assert.Equal(t, "Dana checked out Impact Driver", entries[0].Description)

	// Hard-deleted tool and user still render with placeholders.
	assert.Equal(t, "Tool Returned", entries[1].Action)
	assert.Equal(t, "Unknown User returned Unknown Tool", entries[1].Description)
}
