package service

import (
	"context"
	"time"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

type transactionService struct {
	store   repository.Store
	overdue OverdueService
	now     func() time.Time
}

func NewTransactionService(store repository.Store, overdue OverdueService) TransactionService {
	return &transactionService{
		store:   store,
		overdue: overdue,
		now:     time.Now,
	}
}

func (s *transactionService) Checkout(ctx context.Context, toolID, userID int64, expectedReturnDate *time.Time, notes string) (*domain.TransactionView, error) {
	var created *domain.Transaction
	var tool *domain.Tool
	var user *domain.User

	// The row lock on the tool plus the partial unique index on open
	// transactions keep concurrent checkouts of the same tool down to one
	// winner; the loser surfaces as ErrConflict.
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		var err error
		tool, err = tx.Tools().GetByIDForUpdate(ctx, toolID)
		if err != nil {
			return err
		}
		if !tool.CheckoutAllowed() {
			return domain.Conflictf("tool %q is not available for checkout (status %q)", tool.AssetTag, tool.Status)
		}

		user, err = tx.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}

		created = &domain.Transaction{
			ToolID:             toolID,
			UserID:             userID,
			Type:               domain.TransactionTypeCheckout,
			CheckoutDate:       s.now(),
			ExpectedReturnDate: expectedReturnDate,
			Notes:              notes,
		}
		if err := tx.Transactions().Create(ctx, created); err != nil {
			return err
		}
		return tx.Tools().UpdateStatus(ctx, toolID, domain.ToolStatusCheckedOut)
	})
	if err != nil {
		return nil, err
	}

	view := s.shapeView(created, tool.Name, tool.AssetTag, user.Name, user.Email)
	return view, nil
}

func (s *transactionService) Checkin(ctx context.Context, transactionID int64, notes string) (*domain.TransactionView, error) {
	txn, err := s.store.Transactions().GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Type != domain.TransactionTypeCheckout {
		return nil, domain.NotFoundf("checkout transaction %d", transactionID)
	}
	if !txn.Open() {
		return nil, domain.Conflictf("transaction %d already checked in", transactionID)
	}

	returnedAt := s.now()
	txn.ActualReturnDate = &returnedAt
	if notes != "" {
		txn.Notes = notes
	}
	if err := s.store.Transactions().Update(ctx, txn); err != nil {
		return nil, err
	}

	tool, err := s.store.Tools().GetByID(ctx, txn.ToolID)
	if err != nil {
		return nil, err
	}

	// An overdue tool goes through the reconciler's reset path; anything else
	// is set Available directly. Both land on Available.
	if tool.Status == domain.ToolStatusOverdue {
		if _, err := s.overdue.ResetIfOverdue(ctx, tool.ID); err != nil {
			return nil, err
		}
	} else {
		if err := s.store.Tools().UpdateStatus(ctx, tool.ID, domain.ToolStatusAvailable); err != nil {
			return nil, err
		}
	}

	user, err := s.store.Users().GetByID(ctx, txn.UserID)
	if err != nil {
		return nil, err
	}

	return s.shapeView(txn, tool.Name, tool.AssetTag, user.Name, user.Email), nil
}

func (s *transactionService) List(ctx context.Context) ([]domain.TransactionView, error) {
	records, err := s.store.Transactions().List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]domain.TransactionView, 0, len(records))
	for i := range records {
		rec := &records[i]
		if rec.Type != domain.TransactionTypeCheckout {
			continue
		}
		views = append(views, *s.shapeView(&rec.Transaction, rec.ToolName, rec.AssetTag, rec.UserName, rec.UserEmail, now))
	}
	return views, nil
}

// shapeView flattens a transaction into its client-facing form. The status is
// always re-derived from the dates via domain.Resolve; the cached tool status
// is never consulted here.
func (s *transactionService) shapeView(t *domain.Transaction, toolName, assetTag, userName, userEmail string, at ...time.Time) *domain.TransactionView {
	now := s.now()
	if len(at) > 0 {
		now = at[0]
	}

	if toolName == "" {
		toolName = "Unknown Tool"
	}
	if assetTag == "" {
		assetTag = "Unknown ID"
	}
	if userName == "" {
		userName = "Unknown User"
	}
	if userEmail == "" {
		userEmail = "Unknown Email"
	}

	action := "Checked Out"
	if t.ActualReturnDate != nil {
		action = "Checked In"
	}

	// Freshly inserted rows have no CreatedOn loaded back; the checkout date
	// is the same instant.
	event := t.CreatedOn
	if event.IsZero() {
		event = t.CheckoutDate
	}

	return &domain.TransactionView{
		ID:             t.ID,
		ToolName:       toolName,
		AssetTag:       assetTag,
		UserName:       userName,
		UserEmail:      userEmail,
		Action:         action,
		CheckoutDate:   t.CheckoutDate,
		CheckinDate:    t.ActualReturnDate,
		DueDate:        t.ExpectedReturnDate,
		EventTimestamp: event,
		Status:         domain.Resolve(t, now),
		Notes:          t.Notes,
	}
}
