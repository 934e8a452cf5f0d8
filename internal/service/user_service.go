package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"foodtime/internal/cache"
	apperrors "foodtime/internal/errors"
	"foodtime/internal/model"
	"foodtime/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput is a partial profile update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name               *string
	Weight             *float64
	Height             *float64
	Gender             *string
	Job                *string
	Goal               *string
	DailyCalorieTarget *int
	DailyProteinTarget *int
	DailyCarbsTarget   *int
	DailyFatTarget     *int
}

// UserService manages the current user's profile.
type UserService interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// Update reads the row from the database, never the cache, so the
// password hash survives the save.
func (s *userService) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Weight != nil {
		user.Weight = in.Weight
	}
	if in.Height != nil {
		user.Height = in.Height
	}
	if in.Gender != nil {
		user.Gender = in.Gender
	}
	if in.Job != nil {
		user.Job = in.Job
	}
	if in.Goal != nil {
		user.Goal = in.Goal
	}
	if in.DailyCalorieTarget != nil {
		user.DailyCalorieTarget = *in.DailyCalorieTarget
	}
	if in.DailyProteinTarget != nil {
		user.DailyProteinTarget = *in.DailyProteinTarget
	}
	if in.DailyCarbsTarget != nil {
		user.DailyCarbsTarget = *in.DailyCarbsTarget
	}
	if in.DailyFatTarget != nil {
		user.DailyFatTarget = *in.DailyFatTarget
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// Delete removes the account together with its meals and analyses.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
