package services_test

import (
	"testing"
	"time"

	"furniro/internal/models"
	"furniro/internal/repositories"
	"furniro/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(role models.Role) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 0)

	user := &models.User{Name: "Budi", Email: "budi@example.com", Password: "password123"}
	mockRepo.On("GetByEmail", user.Email).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 0)

	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.User{ID: "u1"}, nil).Once()

	err := authService.RegisterUser(&models.User{Email: "taken@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	stored := &models.User{ID: "u1", Email: "budi@example.com", Password: hashed(t, "password123"), Role: models.RoleAdmin}
	mockRepo.On("GetByEmail", "budi@example.com").Return(stored, nil)

	token, user, err := authService.LoginUser("budi@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	_, _, err = authService.LoginUser("budi@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_LoginUser_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 0)

	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()

	_, _, err := authService.LoginUser("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, 0)

	sign := func(secret string, claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	expired := sign(testJWTSecret, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Minute).Unix()})
	_, err := authService.ValidateToken(expired)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	foreign := sign("other_secret", jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(time.Minute).Unix()})
	_, err = authService.ValidateToken(foreign)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	anonymous := sign(testJWTSecret, jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()})
	_, err = authService.ValidateToken(anonymous)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	_, err = authService.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 0)

	mockRepo.On("CountByRole", models.RoleAdmin).Return(int64(0), nil).Once()
	mockRepo.On("GetByEmail", "admin@furniro.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleAdmin && u.Email == "admin@furniro.com"
	})).Return(nil).Once()

	require.NoError(t, authService.EnsureAdmin("admin@furniro.com", "adminpass"))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_EnsureAdmin_Existing(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, 0)

	mockRepo.On("CountByRole", models.RoleAdmin).Return(int64(1), nil).Once()

	require.NoError(t, authService.EnsureAdmin("admin@furniro.com", "adminpass"))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)

	require.NoError(t, authService.EnsureAdmin("admin@furniro.com", ""))
	mockRepo.AssertExpectations(t)
}
