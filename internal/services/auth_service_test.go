package services_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"bodima/internal/apperrors"
	"bodima/internal/config"
	"bodima/internal/models"
	"bodima/internal/services"
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

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "test_jwt_secret",
		TokenDuration: 24 * time.Hour,
	}
}

func validRegisterInput() services.RegisterInput {
	return services.RegisterInput{
		Name:            "A",
		ContactNumber:   "555",
		Email:           "a@x.com",
		Password:        "p1",
		ConfirmPassword: "p1",
		AgreeToTerms:    true,
	}
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig())

	// Successful registration stores a hash that verifies against the
	// original password, never the password itself.
	mockRepo.On("GetByEmail", "a@x.com").Return(nil, apperrors.NewNotFound("User not found!")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		stored := args.Get(0).(*models.User)
		assert.NotEqual(t, "p1", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("p1")))
	}).Return(nil).Once()

	err := authService.Register(validRegisterInput())
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_Validation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig())

	missingName := validRegisterInput()
	missingName.Name = ""
	err := authService.Register(missingName)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.EqualError(t, err, "All fields are required!")

	noTerms := validRegisterInput()
	noTerms.AgreeToTerms = false
	err = authService.Register(noTerms)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	mismatch := validRegisterInput()
	mismatch.ConfirmPassword = "p2"
	err = authService.Register(mismatch)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.EqualError(t, err, "Passwords do not match!")

	// No repository call is made for invalid input.
	mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig())

	mockRepo.On("GetByEmail", "a@x.com").Return(&models.User{ID: 1, Email: "a@x.com"}, nil).Once()

	err := authService.Register(validRegisterInput())
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.EqualError(t, err, "Email already exists!")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       7,
		Name:     "A",
		Email:    "a@x.com",
		Password: string(hashedPassword),
	}

	// Successful login issues a token carrying the id and email claims.
	mockRepo.On("GetByEmail", "a@x.com").Return(user, nil).Once()
	token, err := authService.Login("a@x.com", "p1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.EqualValues(t, 7, claims["id"])
	assert.Equal(t, "a@x.com", claims["email"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Email: "a@x.com", Password: string(hashedPassword)}

	// Wrong password and unknown email fail with the identical message.
	mockRepo.On("GetByEmail", "a@x.com").Return(user, nil).Once()
	_, wrongPassErr := authService.Login("a@x.com", "wrong")

	mockRepo.On("GetByEmail", "ghost@x.com").Return(nil, apperrors.NewNotFound("User not found!")).Once()
	_, unknownErr := authService.Login("ghost@x.com", "p1")

	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(wrongPassErr))
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(unknownErr))
	assert.EqualError(t, wrongPassErr, "Invalid credentials!")
	assert.EqualError(t, unknownErr, wrongPassErr.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_Validation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig())

	_, err := authService.Login("", "p1")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = authService.Login("a@x.com", "")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig())

	// Garbage token
	_, err := authService.ValidateToken("invalid.token.string")
	assert.Equal(t, apperrors.KindInvalidToken, apperrors.KindOf(err))

	// Token signed with a different secret
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    1,
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	forged, _ := other.SignedString([]byte("some_other_secret"))
	_, err = authService.ValidateToken(forged)
	assert.Equal(t, apperrors.KindInvalidToken, apperrors.KindOf(err))

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    1,
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte("test_jwt_secret"))
	_, err = authService.ValidateToken(expiredString)
	assert.Equal(t, apperrors.KindInvalidToken, apperrors.KindOf(err))
}

func TestAuthService_TokenExpiry(t *testing.T) {
	mockRepo := new(MockUserRepository)
	cfg := testAuthConfig()
	cfg.TokenDuration = -time.Hour // issue tokens already past their expiry
	authService := services.NewAuthService(mockRepo, cfg)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.DefaultCost)
	user := &models.User{ID: 7, Email: "a@x.com", Password: string(hashedPassword)}
	mockRepo.On("GetByEmail", "a@x.com").Return(user, nil).Once()

	token, err := authService.Login("a@x.com", "p1")
	assert.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.Equal(t, apperrors.KindInvalidToken, apperrors.KindOf(err))
	mockRepo.AssertExpectations(t)
}
