package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/johnzhangfit/verttracker/internal/apperrors"
	"github.com/johnzhangfit/verttracker/internal/model"
	"github.com/johnzhangfit/verttracker/internal/repository"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string, tipToeHeight float64) error {
	if len(username) < 1 || len(username) > 20 {
		return apperrors.Validation("username must be a string from 1 to 20 characters long")
	}
	if len(password) < 10 || len(password) > 80 {
		return apperrors.Validation("password must be a string from 10 to 80 characters long")
	}
	if tipToeHeight <= 0 {
		return apperrors.Validation("tip-toe must be a positive floating point value")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	return s.userRepo.Create(ctx, &model.User{
		ID:           id.String(),
		Username:     username,
		Password:     string(hash),
		TipToeHeight: tipToeHeight,
	})
}

// Login checks credentials and returns a signed token. Unknown username and
// wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.generateToken(user.ID)
}

func (s *AuthService) generateToken(userID string) (string, error) {
	secret := viper.GetString("jwt.secret")
	expireHours := viper.GetInt("jwt.expire_hours")

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * time.Duration(expireHours)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
