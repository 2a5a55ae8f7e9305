package models

import "time"

// AccessToken records an issued bearer token by its JWT ID. A token is
// accepted only while its row exists; logout deletes the row.
type AccessToken struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
