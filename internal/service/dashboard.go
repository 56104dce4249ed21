package service

import (
	"context"
	"fmt"
	"time"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

type dashboardService struct {
	toolRepo repository.ToolRepository
	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository
	now      func() time.Time
}

func NewDashboardService(toolRepo repository.ToolRepository, userRepo repository.UserRepository, txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{
		toolRepo: toolRepo,
		userRepo: userRepo,
		txRepo:   txRepo,
		now:      time.Now,
	}
}

// GetStats reads the cached tool status counters. The Overdue count lags the
// true state between sweeps.
func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalTools, err = s.toolRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ToolsAvailable, err = s.toolRepo.CountByStatus(ctx, domain.ToolStatusAvailable); err != nil {
		return nil, err
	}
	if stats.ToolsCheckedOut, err = s.toolRepo.CountByStatus(ctx, domain.ToolStatusCheckedOut); err != nil {
		return nil, err
	}
	if stats.ToolsOverdue, err = s.toolRepo.CountByStatus(ctx, domain.ToolStatusOverdue); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RecentTransactions, err = s.txRepo.Count(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *dashboardService) GetOverdueTools(ctx context.Context, limit int) ([]domain.Tool, error) {
	return s.toolRepo.ListByStatus(ctx, domain.ToolStatusOverdue, limit)
}

func (s *dashboardService) GetRecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error) {
	records, err := s.txRepo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]ActivityEntry, 0, len(records))
	for i := range records {
		rec := &records[i]
		userName := rec.UserName
		if userName == "" {
			userName = "Unknown User"
		}
		toolName := rec.ToolName
		if toolName == "" {
			toolName = "Unknown Tool"
		}

		action := "Tool Checked Out"
		verb := "checked out"
		if rec.ActualReturnDate != nil {
			action = "Tool Returned"
			verb = "returned"
		}

		entries = append(entries, ActivityEntry{
			Action:      action,
			Description: fmt.Sprintf("%s %s %s", userName, verb, toolName),
			Time:        rec.CreatedOn,
		})
	}
	return entries, nil
}
