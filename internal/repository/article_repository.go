package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"encheres-api/internal/model"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(article *model.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		return fmt.Errorf("create article failed: %w", err)
	}
	return nil
}

func (r *ArticleRepository) GetByID(id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query article by id failed: %w", err)
	}
	return &article, nil
}

func (r *ArticleRepository) GetByIDWithAuthor(id uint) (*model.ArticleWithAuthor, error) {
	var row model.ArticleWithAuthor
	err := r.db.Model(&model.Article{}).
		Select("articles.*, users.username AS author").
		Joins("JOIN users ON users.id = articles.user_id").
		Where("articles.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query article with author failed: %w", err)
	}
	return &row, nil
}

func (r *ArticleRepository) ListAllWithAuthor() ([]model.ArticleWithAuthor, error) {
	var rows []model.ArticleWithAuthor
	err := r.db.Model(&model.Article{}).
		Select("articles.*, users.username AS author").
		Joins("JOIN users ON users.id = articles.user_id").
		Order("articles.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list articles failed: %w", err)
	}
	return rows, nil
}

func (r *ArticleRepository) ListByUserID(userID uint) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("list articles by user failed: %w", err)
	}
	return articles, nil
}

// Delete removes an article; image rows go with it via the FK cascade.
func (r *ArticleRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Article{}, id).Error; err != nil {
		return fmt.Errorf("delete article failed: %w", err)
	}
	return nil
}
