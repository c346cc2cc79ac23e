package repository

import (
	"fmt"

	"gorm.io/gorm"

	"encheres-api/internal/model"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(image *model.Image) error {
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("create image failed: %w", err)
	}
	return nil
}

func (r *ImageRepository) ListByArticleID(articleID uint) ([]model.Image, error) {
	var images []model.Image
	err := r.db.Where("article_id = ?", articleID).
		Order("uploaded_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("list images by article failed: %w", err)
	}
	return images, nil
}
