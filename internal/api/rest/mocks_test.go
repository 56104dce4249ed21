package rest

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/service"
)

// MockTransactionService
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Checkout(ctx context.Context, toolID, userID int64, expectedReturnDate *time.Time, notes string) (*domain.TransactionView, error) {
	args := m.Called(ctx, toolID, userID, expectedReturnDate, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionView), args.Error(1)
}
func (m *MockTransactionService) Checkin(ctx context.Context, transactionID int64, notes string) (*domain.TransactionView, error) {
	args := m.Called(ctx, transactionID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionView), args.Error(1)
}
func (m *MockTransactionService) List(ctx context.Context) ([]domain.TransactionView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransactionView), args.Error(1)
}

// MockToolService
type MockToolService struct {
	mock.Mock
}

func (m *MockToolService) CreateTool(ctx context.Context, tool *domain.Tool) (*domain.Tool, error) {
	args := m.Called(ctx, tool)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) GetTool(ctx context.Context, id int64) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) ListTools(ctx context.Context, search string) ([]domain.Tool, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolService) UpdateTool(ctx context.Context, tool *domain.Tool) (*domain.Tool, error) {
	args := m.Called(ctx, tool)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) DeleteTool(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolService) SetImagePath(ctx context.Context, id int64, imagePath string) error {
	args := m.Called(ctx, id, imagePath)
	return args.Error(0)
}

// MockDashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context) (*service.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardStats), args.Error(1)
}
func (m *MockDashboardService) GetOverdueTools(ctx context.Context, limit int) ([]domain.Tool, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockDashboardService) GetRecentActivity(ctx context.Context, limit int) ([]service.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]service.ActivityEntry), args.Error(1)
}
