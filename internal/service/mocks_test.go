package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, cat *domain.Category) error {
	args := m.Called(ctx, cat)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id int64) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) GetByAssetTag(ctx context.Context, assetTag string) (*domain.Tool, error) {
	args := m.Called(ctx, assetTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) List(ctx context.Context, search string) ([]domain.Tool, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByStatus(ctx context.Context, status domain.ToolStatus, limit int) ([]domain.Tool, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) UpdateStatus(ctx context.Context, id int64, status domain.ToolStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockToolRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockToolRepo) CountByStatus(ctx context.Context, status domain.ToolStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) Update(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) List(ctx context.Context) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}
func (m *MockTransactionRepo) Recent(ctx context.Context, limit int) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}
func (m *MockTransactionRepo) ListOpenOverdue(ctx context.Context, now time.Time) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}
func (m *MockTransactionRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockStore bundles the mock repos behind the Store interface. WithTx just
// runs the callback against the same store, which is enough for asserting the
// sequence of calls inside the checkout transaction.
type MockStore struct {
	UserRepo        *MockUserRepo
	CategoryRepo    *MockCategoryRepo
	ToolRepo        *MockToolRepo
	TransactionRepo *MockTransactionRepo
}

func NewMockStore() *MockStore {
	return &MockStore{
		UserRepo:        new(MockUserRepo),
		CategoryRepo:    new(MockCategoryRepo),
		ToolRepo:        new(MockToolRepo),
		TransactionRepo: new(MockTransactionRepo),
	}
}

func (s *MockStore) Users() repository.UserRepository               { return s.UserRepo }
func (s *MockStore) Categories() repository.CategoryRepository      { return s.CategoryRepo }
func (s *MockStore) Tools() repository.ToolRepository               { return s.ToolRepo }
func (s *MockStore) Transactions() repository.TransactionRepository { return s.TransactionRepo }

func (s *MockStore) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}

// MockOverdueService
type MockOverdueService struct {
	mock.Mock
}

func (m *MockOverdueService) Sweep(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockOverdueService) ResetIfOverdue(ctx context.Context, toolID int64) (bool, error) {
	args := m.Called(ctx, toolID)
	return args.Bool(0), args.Error(1)
}
func (m *MockOverdueService) ListOverdueHolders(ctx context.Context) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, userName, toolName string, dueDate time.Time) error {
	args := m.Called(ctx, email, userName, toolName, dueDate)
	return args.Error(0)
}
