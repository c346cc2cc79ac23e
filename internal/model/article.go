package model

import "time"

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PrixDepart  float64   `gorm:"not null" json:"prix_depart"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArticleWithAuthor is the read model for listings, joining in the
// owner's username.
type ArticleWithAuthor struct {
	Article `gorm:"embedded"`
	Author  string `json:"author"`
}
