package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"foodtime/internal/ai"
	"foodtime/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of auth.TokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockGateway is a mock implementation of AIGateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ReviewDailyMeals(ctx context.Context, in ai.DailyInput) (*ai.Review, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.Review), args.Error(1)
}

func (m *MockGateway) ReviewSingleFood(ctx context.Context, description string) (*ai.Review, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.Review), args.Error(1)
}

func (m *MockGateway) ReviewPhoto(ctx context.Context, image ai.Image) (*ai.Review, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.Review), args.Error(1)
}

func (m *MockGateway) SummarizeWeek(ctx context.Context, days []ai.DaySummary, stats ai.WeekStats, goals ai.Goals) (string, error) {
	args := m.Called(ctx, days, stats, goals)
	return args.String(0), args.Error(1)
}
