package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodtime/internal/auth"
	apperrors "foodtime/internal/errors"
	"foodtime/internal/model"
)

func newAuthService(repo *MockUserRepository, tokens *MockTokenStore) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret", 30*time.Minute)
	return NewAuthService(repo, NewUserService(repo, nil), jwtService, tokens, nil), jwtService
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful signup",
			email: "new@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "new@example.com" &&
						u.PasswordHash != "password123" &&
						bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil &&
						u.IsActive &&
						u.DailyCalorieTarget == model.DefaultCalorieTarget
				})).Return(nil)
			},
		},
		{
			name:  "email already registered",
			email: "taken@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{ID: 3, Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc, jwtService := newAuthService(repo, new(MockTokenStore))

			token, err := svc.Signup(context.Background(), SignupInput{Email: tt.email, Password: "password123", Name: "Test"})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				id, _ := claims.UserID()
				assert.Equal(t, uint(1), id)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	active := &model.User{ID: 5, Email: "a@example.com", PasswordHash: hashed(t, "password123"), IsActive: true}
	inactive := &model.User{ID: 6, Email: "off@example.com", PasswordHash: hashed(t, "password123"), IsActive: false}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "a@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@example.com").Return(active, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@example.com").Return(active, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			email:    "off@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "off@example.com").Return(inactive, nil)
			},
			expectedError: apperrors.ErrInactiveAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc, _ := newAuthService(repo, new(MockTokenStore))

			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 30*time.Minute)
	token, err := jwtService.GenerateAccessToken(9)
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name: "active user",
			setupMock: func(r *MockUserRepository, s *MockTokenStore) {
				s.On("IsBlacklisted", mock.Anything, claims.ID).Return(false, nil)
				r.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, IsActive: true}, nil)
			},
		},
		{
			name: "deleted user",
			setupMock: func(r *MockUserRepository, s *MockTokenStore) {
				s.On("IsBlacklisted", mock.Anything, claims.ID).Return(false, nil)
				r.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUnauthenticated,
		},
		{
			name: "inactive user",
			setupMock: func(r *MockUserRepository, s *MockTokenStore) {
				s.On("IsBlacklisted", mock.Anything, claims.ID).Return(false, nil)
				r.On("FindByID", mock.Anything, uint(9)).Return(&model.User{ID: 9, IsActive: false}, nil)
			},
			expectedError: apperrors.ErrInactiveAccount,
		},
		{
			name: "revoked token",
			setupMock: func(r *MockUserRepository, s *MockTokenStore) {
				s.On("IsBlacklisted", mock.Anything, claims.ID).Return(true, nil)
			},
			expectedError: apperrors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tokens := new(MockTokenStore)
			tt.setupMock(repo, tokens)
			svc, _ := newAuthService(repo, tokens)

			user, err := svc.Authenticate(context.Background(), claims)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(9), user.ID)
			}
			repo.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}

func TestAuthService_AuthenticateDatabaseError(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenStore)
	tokens.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("FindByID", mock.Anything, uint(2)).Return(nil, errors.New("connection reset"))
	svc, jwtService := newAuthService(repo, tokens)

	token, _ := jwtService.GenerateAccessToken(2)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), claims)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestAuthService_Logout(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenStore)
	svc, jwtService := newAuthService(repo, tokens)

	token, _ := jwtService.GenerateAccessToken(4)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	tokens.On("Blacklist", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 29*time.Minute && ttl <= 30*time.Minute
	})).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), claims))
	tokens.AssertExpectations(t)

	assert.ErrorIs(t, svc.Logout(context.Background(), nil), apperrors.ErrUnauthenticated)
}
