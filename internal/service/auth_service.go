package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodtime/internal/auth"
	apperrors "foodtime/internal/errors"
	"foodtime/internal/logger"
	"foodtime/internal/model"
	"foodtime/internal/repository"
)

const bcryptCost = 10

// SignupInput carries the profile supplied at registration.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Weight   *float64
	Height   *float64
	Gender   *string
	Job      *string
	Goal     *string
}

// AuthService handles registration, login and token resolution.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	users      UserService
	jwtService *auth.JWTService
	tokenStore auth.TokenStore
	log        *logger.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, users UserService, jwtService *auth.JWTService, tokenStore auth.TokenStore, log *logger.Logger) AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &authService{
		userRepo:   userRepo,
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

// Signup creates an account with a bcrypt password hash and returns an access token.
func (s *authService) Signup(ctx context.Context, in SignupInput) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return "", apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:              in.Email,
		Name:               in.Name,
		PasswordHash:       string(hashedPassword),
		IsActive:           true,
		Weight:             in.Weight,
		Height:             in.Height,
		Gender:             in.Gender,
		Job:                in.Job,
		Goal:               in.Goal,
		DailyCalorieTarget: model.DefaultCalorieTarget,
		DailyProteinTarget: model.DefaultProteinTarget,
		DailyCarbsTarget:   model.DefaultCarbsTarget,
		DailyFatTarget:     model.DefaultFatTarget,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user registered", "user_id", user.ID)

	return s.issue(user)
}

// Login verifies the password and rejects deactivated accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", apperrors.ErrInactiveAccount
	}

	return s.issue(user)
}

// Authenticate resolves verified token claims to a live, active user.
// Revoked tokens and tokens of deleted users are unauthenticated.
func (s *authService) Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	if claims == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if revoked, _ := s.tokenStore.IsBlacklisted(ctx, claims.ID); revoked {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrInactiveAccount
	}
	return user, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil {
		return apperrors.ErrUnauthenticated
	}
	return s.tokenStore.Blacklist(ctx, claims.ID, claims.TTL(time.Now()))
}

func (s *authService) issue(user *model.User) (string, error) {
	token, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}
