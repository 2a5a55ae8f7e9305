package services

import (
	"errors"

	"inkwell/apperror"
	"inkwell/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "user not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to fetch user", err)
	}
	return &user, nil
}

// Profile returns the user together with comment stats: total_comments
// counts everything they wrote, contributions only their comments on
// other people's posts.
func (s *UserService) Profile(userID uint) (*models.ProfileResponse, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to count comments", err)
	}

	var contributions int64
	err = s.db.Model(&models.Comment{}).
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("comments.user_id = ? AND posts.user_id <> ?", userID, userID).
		Count(&contributions).Error
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to count contributions", err)
	}

	return &models.ProfileResponse{
		User:          *user,
		TotalComments: total,
		Contributions: contributions,
	}, nil
}
