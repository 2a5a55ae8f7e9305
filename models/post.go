package models

import "time"

type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Tags        []Tag     `json:"tags" gorm:"many2many:post_tags;"`
	Comments    []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

func (p *Post) OwnerID() uint { return p.UserID }

// PostRequest is the full payload for both create and update; updates
// re-validate the whole post rather than patching fields.
type PostRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Content     string   `json:"content" binding:"required"`
	IsPublished *bool    `json:"is_published" binding:"required"`
	Tags        []string `json:"tags"`
}
