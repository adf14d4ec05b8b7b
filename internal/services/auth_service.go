package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"bodima/internal/apperrors"
	"bodima/internal/config"
	"bodima/internal/models"
	"bodima/internal/repositories"
)

// RegisterInput carries the transient registration credentials. The raw
// password is hashed and discarded; it is never persisted or logged.
type RegisterInput struct {
	Name            string `json:"name"`
	ContactNumber   string `json:"contactNumber"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenDuration: cfg.TokenDuration,
	}
}

// Register validates the input, hashes the password and stores the new user.
// Registration does not log the user in; login is a separate step.
func (s *AuthService) Register(input RegisterInput) error {
	if input.Name == "" || input.ContactNumber == "" || input.Email == "" ||
		input.Password == "" || input.ConfirmPassword == "" || !input.AgreeToTerms {
		return apperrors.NewValidation("All fields are required!")
	}
	if input.Password != input.ConfirmPassword {
		return apperrors.NewValidation("Passwords do not match!")
	}

	if _, err := s.userRepo.GetByEmail(input.Email); err == nil {
		return apperrors.NewConflict("Email already exists!")
	} else if !apperrors.IsNotFound(err) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.NewInternal("failed to hash password", err)
	}

	user := &models.User{
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		Password:      string(hashedPassword),
	}
	return s.userRepo.Create(user)
}

// Login authenticates a user and returns a signed session token. Unknown
// email and wrong password fail with the same message so neither case can be
// told apart from the outside.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.NewValidation("Email and password are required!")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NewAuth("Invalid credentials!")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.NewAuth("Invalid credentials!")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenDuration).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.NewInternal("failed to sign token", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a session token, returning its claims.
// Any parse, signature or expiry failure is reported as an invalid token;
// the caller decides how to treat an absent token.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.NewInvalidToken("Invalid token!", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewInvalidToken("Invalid token!", nil)
	}
	return claims, nil
}
