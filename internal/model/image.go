package model

import "time"

type Image struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ArticleID  uint      `gorm:"not null;index" json:"article_id"`
	Article    *Article  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	Filepath   string    `gorm:"size:512;not null" json:"-"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
