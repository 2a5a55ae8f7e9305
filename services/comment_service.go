package services

import (
	"errors"

	"inkwell/apperror"
	"inkwell/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListForPost returns a post's top-level comments in insertion order,
// each with its direct replies and both levels' authors.
func (s *CommentService) ListForPost(postID uint) ([]models.Comment, error) {
	if err := s.postExists(postID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := s.db.
		Where("post_id = ? AND parent_id IS NULL", postID).
		Preload("User").
		Preload("Replies").
		Preload("Replies.User").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to fetch comments", err)
	}
	return comments, nil
}

func (s *CommentService) Create(actorID, postID uint, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := s.postExists(postID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		var count int64
		if err := s.db.Model(&models.Comment{}).Where("id = ?", *req.ParentID).Count(&count).Error; err != nil {
			return nil, apperror.Wrap(apperror.Internal, "failed to look up parent comment", err)
		}
		if count == 0 {
			return nil, apperror.New(apperror.Validation, "parent comment does not exist")
		}
	}

	comment := models.Comment{
		Content:  req.Content,
		UserID:   actorID,
		PostID:   postID,
		ParentID: req.ParentID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create comment", err)
	}

	return s.reload(comment.ID)
}

func (s *CommentService) Update(id, actorID uint, req *models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if !canMutate(actorID, comment) {
		return nil, apperror.New(apperror.Forbidden, "you do not own this comment")
	}

	comment.Content = req.Content
	if err := s.db.Save(comment).Error; err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to update comment", err)
	}

	return s.reload(comment.ID)
}

// Delete removes a comment and cascades to every descendant reply, so no
// surviving comment is left pointing at a deleted parent.
func (s *CommentService) Delete(id, actorID uint) error {
	comment, err := s.find(id)
	if err != nil {
		return err
	}
	if !canMutate(actorID, comment) {
		return apperror.New(apperror.Forbidden, "you do not own this comment")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Replies-of-replies are stored even though the UI renders one
		// level, so walk the tree breadth-first before deleting.
		ids := []uint{comment.ID}
		frontier := ids
		for len(frontier) > 0 {
			var children []uint
			if err := tx.Model(&models.Comment{}).Where("parent_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}
		return tx.Delete(&models.Comment{}, "id IN ?", ids).Error
	})
	if err != nil {
		return apperror.Wrap(apperror.Internal, "failed to delete comment", err)
	}
	return nil
}

func (s *CommentService) find(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "comment not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to fetch comment", err)
	}
	return &comment, nil
}

func (s *CommentService) reload(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.
		Preload("User").
		Preload("Replies").
		Preload("Replies.User").
		First(&comment, id).Error
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to fetch comment", err)
	}
	return &comment, nil
}

func (s *CommentService) postExists(postID uint) error {
	var count int64
	if err := s.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return apperror.Wrap(apperror.Internal, "failed to look up post", err)
	}
	if count == 0 {
		return apperror.New(apperror.NotFound, "post not found")
	}
	return nil
}
