package app

import (
	"context"

	"encheres-api/internal/model"
)

// Store interfaces consumed by the services; implemented by the GORM
// repositories and by in-memory fakes in tests.

type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

type ArticleStore interface {
	Create(article *model.Article) error
	GetByID(id uint) (*model.Article, error)
	GetByIDWithAuthor(id uint) (*model.ArticleWithAuthor, error)
	ListAllWithAuthor() ([]model.ArticleWithAuthor, error)
	ListByUserID(userID uint) ([]model.Article, error)
	Delete(id uint) error
}

type ImageStore interface {
	Create(image *model.Image) error
	ListByArticleID(articleID uint) ([]model.Image, error)
}

// ListingCache is the Redis-backed cache of the all-articles listing.
type ListingCache interface {
	GetAll(ctx context.Context) ([]model.ArticleWithAuthor, bool, error)
	SetAll(ctx context.Context, articles []model.ArticleWithAuthor) error
	Invalidate(ctx context.Context) error
	MarkDirty(ctx context.Context) error
	IsDirty(ctx context.Context) (bool, error)
}

// CleanupPublisher enqueues disk paths of image files whose rows were
// removed by a cascade delete.
type CleanupPublisher interface {
	Publish(ctx context.Context, paths []string) error
}

// FileRemover discards an uploaded file that a rejected request left
// behind.
type FileRemover interface {
	Remove(path string) error
}
