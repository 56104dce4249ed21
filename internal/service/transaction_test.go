package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolroom-backend/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTransactionService_Checkout(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	due := now.Add(72 * time.Hour)

	user := &domain.User{ID: 7, Name: "Dana", Email: "dana@example.com"}

	t.Run("Success", func(t *testing.T) {
		store := NewMockStore()
		svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

		tool := &domain.Tool{ID: 3, Name: "Impact Driver", AssetTag: "T-0031", Status: domain.ToolStatusAvailable}
		store.ToolRepo.On("GetByIDForUpdate", ctx, int64(3)).Return(tool, nil)
		store.UserRepo.On("GetByID", ctx, int64(7)).Return(user, nil)
		store.TransactionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Transaction")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Transaction).ID = 42
		}).Return(nil)
		store.ToolRepo.On("UpdateStatus", ctx, int64(3), domain.ToolStatusCheckedOut).Return(nil)

		view, err := svc.Checkout(ctx, 3, 7, &due, "site visit")
		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Equal(t, int64(42), view.ID)
		assert.Equal(t, "Impact Driver", view.ToolName)
		assert.Equal(t, "T-0031", view.AssetTag)
		assert.Equal(t, "Dana", view.UserName)
		assert.Equal(t, "Checked Out", view.Action)
		assert.Equal(t, domain.ResolvedInUse, view.Status)
		assert.Equal(t, now, view.CheckoutDate)
		assert.Equal(t, now, view.EventTimestamp)
		store.ToolRepo.AssertCalled(t, "UpdateStatus", ctx, int64(3), domain.ToolStatusCheckedOut)
	})

	t.Run("Overdue tool can still be checked out", func(t *testing.T) {
		store := NewMockStore()
		svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

		tool := &domain.Tool{ID: 4, Name: "Ladder", AssetTag: "T-0040", Status: domain.ToolStatusOverdue}
		store.ToolRepo.On("GetByIDForUpdate", ctx, int64(4)).Return(tool, nil)
		store.UserRepo.On("GetByID", ctx, int64(7)).Return(user, nil)
		store.TransactionRepo.On("Create", ctx, mock.AnythingOfType("*domain.Transaction")).Return(nil)
		store.ToolRepo.On("UpdateStatus", ctx, int64(4), domain.ToolStatusCheckedOut).Return(nil)

		view, err := svc.Checkout(ctx, 4, 7, nil, "")
		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Equal(t, domain.ResolvedInUse, view.Status)
	})

	t.Run("Blocked statuses", func(t *testing.T) {
		for _, status := range []domain.ToolStatus{
			domain.ToolStatusCheckedOut,
			domain.ToolStatusUnderMaintenance,
			domain.ToolStatusRetired,
		} {
			store := NewMockStore()
			svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

			tool := &domain.Tool{ID: 5, AssetTag: "T-0050", Status: status}
			store.ToolRepo.On("GetByIDForUpdate", ctx, int64(5)).Return(tool, nil)

			view, err := svc.Checkout(ctx, 5, 7, &due, "")
			assert.Nil(t, view)
			assert.ErrorIs(t, err, domain.ErrConflict, "status %s", status)
			store.TransactionRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
		}
	})

	t.Run("Tool not found", func(t *testing.T) {
		store := NewMockStore()
		svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

		store.ToolRepo.On("GetByIDForUpdate", ctx, int64(99)).Return(nil, domain.NotFoundf("tool 99"))

		view, err := svc.Checkout(ctx, 99, 7, &due, "")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("User not found", func(t *testing.T) {
		store := NewMockStore()
		svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

		tool := &domain.Tool{ID: 3, AssetTag: "T-0031", Status: domain.ToolStatusAvailable}
		store.ToolRepo.On("GetByIDForUpdate", ctx, int64(3)).Return(tool, nil)
		store.UserRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.NotFoundf("user 99"))

		view, err := svc.Checkout(ctx, 3, 99, &due, "")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		store.TransactionRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})
}

func TestTransactionService_Checkin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 20, 9, 30, 0, 0, time.UTC)
	checkoutDate := now.Add(-96 * time.Hour)
	due := now.Add(24 * time.Hour)

	user := &domain.User{ID: 7, Name: "Dana", Email: "dana@example.com"}

	t.Run("Success", func(t *testing.T) {
		store := NewMockStore()
		svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

		txn := &domain.Transaction{
			ID:                 42,
			ToolID:             3,
			UserID:             7,
			Type:               domain.TransactionTypeCheckout,
			CheckoutDate:       checkoutDate,
			ExpectedReturnDate: &due,
		}
		tool := &domain.Tool{ID: 3, Name: "Impact Driver", AssetTag: "T-0031", Status: domain.ToolStatusCheckedOut}

		store.TransactionRepo.On("GetByID", ctx, int64(42)).Return(txn, nil)
		store.TransactionRepo.On("Update", ctx, txn).Return(nil)
		store.ToolRepo.On("GetByID", ctx, int64(3)).Return(tool, nil)
		store.ToolRepo.On("UpdateStatus", ctx, int64(3), domain.ToolStatusAvailable).Return(nil)
		store.UserRepo.On("GetByID", ctx, int64(7)).Return(user, nil)

		view, err := svc.Checkin(ctx, 42, "left in bay 2")
		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Equal(t, "Checked In", view.Action)
		assert.Equal(t, domain.ResolvedAvailable, view.Status)
		assert.NotNil(t, view.CheckinDate)
		assert.Equal(t, now, *view.CheckinDate)
		assert.Equal(t, "left in bay 2", view.Notes)
	})

	t.Run("Overdue tool is reset through the reconciler", func(t *testing.T) {
		store := NewMockStore()
		overdue := new(MockOverdueService)
		svc := &transactionService{store: store, overdue: overdue, now: fixedClock(now)}

		pastDue := now.Add(-48 * time.Hour)
		txn := &domain.Transaction{
			ID:                 43,
			ToolID:             4,
			UserID:             7,
			Type:               domain.TransactionTypeCheckout,
			CheckoutDate:       checkoutDate,
			ExpectedReturnDate: &pastDue,
		}
		tool := &domain.Tool{ID: 4, Name: "Ladder", AssetTag: "T-0040", Status: domain.ToolStatusOverdue}

		store.TransactionRepo.On("GetByID", ctx, int64(43)).Return(txn, nil)
		store.TransactionRepo.On("Update", ctx, txn).Return(nil)
		store.ToolRepo.On("GetByID", ctx, int64(4)).Return(tool, nil)
		overdue.On("ResetIfOverdue", ctx, int64(4)).Return(true, nil)
		store.UserRepo.On("GetByID", ctx, int64(7)).Return(user, nil)

		view, err := svc.Checkin(ctx, 43, "")
		assert.NoError(t, err)
		assert.NotNil(t, view)
		// Once the return date is stamped the resolved status is Available,
		// even though the due date had lapsed.
		assert.Equal(t, domain.ResolvedAvailable, view.Status)
		overdue.AssertCalled(t, "ResetIfOverdue", ctx, int64(4))
		store.ToolRepo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, mock.Anything)
	})

	t.Run("Already checked in", func(t *testing.T) {
		store := NewMockStore()
		svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

		returned := now.Add(-24 * time.Hour)
		txn := &domain.Transaction{
			ID:               42,
			ToolID:           3,
			UserID:           7,
			Type:             domain.TransactionTypeCheckout,
			CheckoutDate:     checkoutDate,
			ActualReturnDate: &returned,
		}
		store.TransactionRepo.On("GetByID", ctx, int64(42)).Return(txn, nil)

		view, err := svc.Checkin(ctx, 42, "")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, returned, *txn.ActualReturnDate) // not re-stamped
		store.TransactionRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("Not found", func(t *testing.T) {
		store := NewMockStore()
		svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

		store.TransactionRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.NotFoundf("transaction 99"))

		view, err := svc.Checkin(ctx, 99, "")
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTransactionService_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 20, 9, 30, 0, 0, time.UTC)

	store := NewMockStore()
	svc := &transactionService{store: store, overdue: new(MockOverdueService), now: fixedClock(now)}

	lapsed := now.Add(-2 * time.Hour)
	future := now.Add(48 * time.Hour)
	returned := now.Add(-24 * time.Hour)

	records := []domain.TransactionRecord{
		{
			Transaction: domain.Transaction{
				ID: 3, ToolID: 1, UserID: 7, Type: domain.TransactionTypeCheckout,
				CheckoutDate: now.Add(-72 * time.Hour), ExpectedReturnDate: &lapsed,
				CreatedOn: now.Add(-72 * time.Hour),
			},
			ToolName: "Ladder", AssetTag: "T-0040", UserName: "Dana", UserEmail: "dana@example.com",
		},
		{
			Transaction: domain.Transaction{
				ID: 2, ToolID: 2, UserID: 7, Type: domain.TransactionTypeCheckout,
				CheckoutDate: now.Add(-48 * time.Hour), ExpectedReturnDate: &future,
				CreatedOn: now.Add(-48 * time.Hour),
			},
			// Tool was hard-deleted after checkout.
			ToolName: "", AssetTag: "", UserName: "Dana", UserEmail: "dana@example.com",
		},
		{
			Transaction: domain.Transaction{
				ID: 1, ToolID: 3, UserID: 8, Type: domain.TransactionTypeCheckout,
				CheckoutDate: now.Add(-96 * time.Hour), ExpectedReturnDate: &lapsed,
				ActualReturnDate: &returned, CreatedOn: now.Add(-96 * time.Hour),
			},
			ToolName: "Impact Driver", AssetTag: "T-0031", UserName: "Sam", UserEmail: "sam@example.com",
		},
	}
	store.TransactionRepo.On("List", ctx).Return(records, nil)

	views, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, views, 3)

	// Status is resolved from the dates, regardless of cached tool status.
	assert.Equal(t, domain.ResolvedOverdue, views[0].Status)
	assert.Equal(t, "Checked Out", views[0].Action)

	assert.Equal(t, domain.ResolvedInUse, views[1].Status)
	assert.Equal(t, "Unknown Tool", views[1].ToolName)
	assert.Equal(t, "Unknown ID", views[1].AssetTag)

	assert.Equal(t, domain.ResolvedAvailable, views[2].Status)
	assert.Equal(t, "Checked In", views[2].Action)
}
