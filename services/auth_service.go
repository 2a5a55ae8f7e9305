package services

import (
	"errors"

	"inkwell/apperror"
	"inkwell/models"
	"inkwell/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, string, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, "", apperror.Wrap(apperror.Internal, "failed to create user", err)
	}
	if count > 0 {
		return nil, "", apperror.New(apperror.Conflict, "email already registered")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := user.HashPassword(); err != nil {
		return nil, "", apperror.Wrap(apperror.Internal, "failed to hash password", err)
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, "", apperror.Wrap(apperror.Internal, "failed to create user", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(req *models.LoginRequest) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperror.New(apperror.InvalidCredentials, "invalid credentials")
		}
		return nil, "", apperror.Wrap(apperror.Internal, "failed to look up user", err)
	}
	if !user.CheckPassword(req.Password) {
		return nil, "", apperror.New(apperror.InvalidCredentials, "invalid credentials")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Logout revokes the token identified by tokenID. Revoking an already
// revoked token is a no-op.
func (s *AuthService) Logout(tokenID string) error {
	if err := s.db.Delete(&models.AccessToken{}, "id = ?", tokenID).Error; err != nil {
		return apperror.Wrap(apperror.Internal, "failed to revoke token", err)
	}
	return nil
}

// ResolveToken verifies a bearer token and returns the user and token IDs
// it carries. A token whose access_tokens row has been deleted (logout)
// no longer resolves.
func (s *AuthService) ResolveToken(tokenString string) (uint, string, error) {
	userID, tokenID, err := utils.ValidateJWT(tokenString)
	if err != nil {
		return 0, "", apperror.Wrap(apperror.Unauthenticated, "invalid token", err)
	}

	var count int64
	if err := s.db.Model(&models.AccessToken{}).Where("id = ?", tokenID).Count(&count).Error; err != nil {
		return 0, "", apperror.Wrap(apperror.Internal, "failed to look up token", err)
	}
	if count == 0 {
		return 0, "", apperror.New(apperror.Unauthenticated, "token revoked")
	}
	return userID, tokenID, nil
}

func (s *AuthService) issueToken(userID uint) (string, error) {
	tokenID := uuid.New().String()
	if err := s.db.Create(&models.AccessToken{ID: tokenID, UserID: userID}).Error; err != nil {
		return "", apperror.Wrap(apperror.Internal, "failed to store token", err)
	}
	token, err := utils.GenerateJWT(userID, tokenID)
	if err != nil {
		return "", apperror.Wrap(apperror.Internal, "failed to sign token", err)
	}
	return token, nil
}
