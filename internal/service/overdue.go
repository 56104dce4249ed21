package service

import (
	"context"
	"time"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/logger"
	"toolroom-backend/internal/repository"
)

type overdueService struct {
	store repository.Store
	now   func() time.Time
}

func NewOverdueService(store repository.Store) OverdueService {
	return &overdueService{
		store: store,
		now:   time.Now,
	}
}

// Sweep finds open checkouts whose due date has lapsed and marks the
// referenced tools Overdue. A tool that fails to update is logged and
// skipped; the sweep always runs to completion. Running it twice in a row
// mutates nothing the second time.
func (s *overdueService) Sweep(ctx context.Context) (int, error) {
	records, err := s.store.Transactions().ListOpenOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range records {
		rec := &records[i]
		tool, err := s.store.Tools().GetByID(ctx, rec.ToolID)
		if err != nil {
			logger.Error("Sweep: failed to load tool", "tool_id", rec.ToolID, "transaction_id", rec.ID, "error", err)
			continue
		}
		if tool.Status == domain.ToolStatusOverdue {
			continue
		}
		if err := s.store.Tools().UpdateStatus(ctx, tool.ID, domain.ToolStatusOverdue); err != nil {
			logger.Error("Sweep: failed to mark tool overdue", "tool_id", tool.ID, "asset_tag", tool.AssetTag, "error", err)
			continue
		}
		updated++
		logger.Info("Marked tool as overdue", "tool_id", tool.ID, "asset_tag", tool.AssetTag, "name", tool.Name)
	}

	return updated, nil
}

func (s *overdueService) ResetIfOverdue(ctx context.Context, toolID int64) (bool, error) {
	tool, err := s.store.Tools().GetByID(ctx, toolID)
	if err != nil {
		return false, err
	}
	if tool.Status != domain.ToolStatusOverdue {
		return false, nil
	}
	if err := s.store.Tools().UpdateStatus(ctx, toolID, domain.ToolStatusAvailable); err != nil {
		return false, err
	}
	logger.Info("Reset tool status from Overdue to Available", "tool_id", tool.ID, "asset_tag", tool.AssetTag)
	return true, nil
}

func (s *overdueService) ListOverdueHolders(ctx context.Context) ([]domain.TransactionRecord, error) {
	return s.store.Transactions().ListOpenOverdue(ctx, s.now())
}
