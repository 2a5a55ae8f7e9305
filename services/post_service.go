package services

import (
	"errors"
	"strings"

	"inkwell/apperror"
	"inkwell/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// List returns published posts, plus the viewer's own drafts when viewer
// is set. Search matches a case-insensitive substring of title or content.
func (s *PostService) List(viewer *uint, search string, page int) ([]models.Post, models.Pagination, error) {
	query := s.db.Model(&models.Post{})
	if viewer != nil {
		query = query.Where("is_published = ? OR user_id = ?", true, *viewer)
	} else {
		query = query.Where("is_published = ?", true)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", like, like)
	}

	return s.paginate(query, page)
}

func (s *PostService) Get(id uint, viewer *uint) (*models.Post, error) {
	var post models.Post
	err := s.db.
		Preload("User").
		Preload("Tags").
		Preload("Comments", "parent_id IS NULL").
		Preload("Comments.User").
		Preload("Comments.Replies").
		Preload("Comments.Replies.User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "post not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to fetch post", err)
	}

	// Drafts only exist for their owner.
	if !post.IsPublished && (viewer == nil || *viewer != post.UserID) {
		return nil, apperror.New(apperror.NotFound, "post not found")
	}
	return &post, nil
}

func (s *PostService) Create(ownerID uint, req *models.PostRequest) (*models.Post, error) {
	post := models.Post{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: *req.IsPublished,
		UserID:      ownerID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return syncTags(tx, &post, req.Tags)
	})
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to create post", err)
	}

	return s.reload(post.ID)
}

// Update re-validates the whole payload and re-syncs tags. The returned
// flag reports whether this update took the post from draft to published,
// which is what the live feed announces.
func (s *PostService) Update(id, actorID uint, req *models.PostRequest) (*models.Post, bool, error) {
	post, err := s.find(id)
	if err != nil {
		return nil, false, err
	}
	if !canMutate(actorID, post) {
		return nil, false, apperror.New(apperror.Forbidden, "you do not own this post")
	}

	becamePublished := !post.IsPublished && *req.IsPublished

	post.Title = req.Title
	post.Content = req.Content
	post.IsPublished = *req.IsPublished

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			return err
		}
		return syncTags(tx, post, req.Tags)
	})
	if err != nil {
		return nil, false, apperror.Wrap(apperror.Internal, "failed to update post", err)
	}

	updated, err := s.reload(post.ID)
	if err != nil {
		return nil, false, err
	}
	return updated, becamePublished, nil
}

func (s *PostService) Delete(id, actorID uint) error {
	post, err := s.find(id)
	if err != nil {
		return err
	}
	if !canMutate(actorID, post) {
		return apperror.New(apperror.Forbidden, "you do not own this post")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
	if err != nil {
		return apperror.Wrap(apperror.Internal, "failed to delete post", err)
	}
	return nil
}

// ForUser returns all of a user's posts, drafts included.
func (s *PostService) ForUser(userID uint, page int) ([]models.Post, models.Pagination, error) {
	query := s.db.Model(&models.Post{}).Where("user_id = ?", userID)
	return s.paginate(query, page)
}

// DraftsForUser returns only the user's unpublished posts.
func (s *PostService) DraftsForUser(userID uint, page int) ([]models.Post, models.Pagination, error) {
	query := s.db.Model(&models.Post{}).Where("user_id = ? AND is_published = ?", userID, false)
	return s.paginate(query, page)
}

func (s *PostService) paginate(query *gorm.DB, page int) ([]models.Post, models.Pagination, error) {
	if page < 1 {
		page = 1
	}

	// The builder is reused for the count and the page query.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, models.Pagination{}, apperror.Wrap(apperror.Internal, "failed to count posts", err)
	}

	var posts []models.Post
	err := query.
		Preload("User").
		Preload("Tags").
		Order("created_at DESC, id DESC").
		Limit(models.PerPage).
		Offset((page - 1) * models.PerPage).
		Find(&posts).Error
	if err != nil {
		return nil, models.Pagination{}, apperror.Wrap(apperror.Internal, "failed to fetch posts", err)
	}

	return posts, models.NewPagination(page, total), nil
}

func (s *PostService) find(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.NotFound, "post not found")
		}
		return nil, apperror.Wrap(apperror.Internal, "failed to fetch post", err)
	}
	return &post, nil
}

func (s *PostService) reload(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("User").Preload("Tags").First(&post, id).Error
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "failed to fetch post", err)
	}
	return &post, nil
}

// syncTags replaces a post's tag associations with exactly the given
// names, finding or creating each tag by its normalized name. Duplicate
// and blank names are dropped.
func syncTags(tx *gorm.DB, post *models.Post, names []string) error {
	seen := make(map[string]bool, len(names))
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		name = models.NormalizeTagName(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var tag models.Tag
		if err := tx.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		tags = append(tags, tag)
	}
	return tx.Model(post).Association("Tags").Replace(tags)
}
