package models

import "strings"

type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"uniqueIndex;not null"`
	Posts []Post `json:"-" gorm:"many2many:post_tags;"`
}

// NormalizeTagName trims and lowercases a tag name so "Go", " go" and "go"
// all resolve to the same row. Returns "" for names that are only whitespace.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
