package app

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"encheres-api/internal/model"
)

const (
	minTitleLen       = 3
	minDescriptionLen = 10
)

type ArticleService struct {
	articles ArticleStore
	images   ImageStore
	cache    ListingCache
	cleanup  CleanupPublisher
}

type CreateArticleInput struct {
	UserID      uint
	Title       string
	Description string
	PrixDepart  float64
}

func NewArticleService(
	articles ArticleStore,
	images ImageStore,
	cache ListingCache,
	cleanup CleanupPublisher,
) *ArticleService {
	return &ArticleService{
		articles: articles,
		images:   images,
		cache:    cache,
		cleanup:  cleanup,
	}
}

// Create validates all rules at once and escapes markup-significant
// characters in title and description before persisting, so injected
// markup is inert wherever the listing is later rendered.
func (s *ArticleService) Create(input CreateArticleInput) (*model.Article, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	// Length rules count characters, not bytes: "éé" is two characters.
	var violations []string
	if utf8.RuneCountInString(title) < minTitleLen {
		violations = append(violations, fmt.Sprintf("title must be at least %d characters", minTitleLen))
	}
	if utf8.RuneCountInString(description) < minDescriptionLen {
		violations = append(violations, fmt.Sprintf("description must be at least %d characters", minDescriptionLen))
	}
	if input.PrixDepart <= 0 {
		violations = append(violations, "starting price must be a positive number")
	}
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	article := &model.Article{
		Title:       html.EscapeString(title),
		Description: html.EscapeString(description),
		PrixDepart:  input.PrixDepart,
		UserID:      input.UserID,
	}
	if err := s.articles.Create(article); err != nil {
		return nil, err
	}

	s.invalidateListing(context.Background())
	return article, nil
}

func (s *ArticleService) List() ([]model.ArticleWithAuthor, error) {
	ctx := context.Background()
	if s.cache != nil {
		dirty, err := s.cache.IsDirty(ctx)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.cache.GetAll(ctx); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	articles, err := s.articles.ListAllWithAuthor()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx); dirtyErr == nil && !dirty {
			_ = s.cache.SetAll(ctx, articles)
		}
	}
	return articles, nil
}

func (s *ArticleService) Get(id uint) (*model.ArticleWithAuthor, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	article, err := s.articles.GetByIDWithAuthor(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) ListMine(userID uint) ([]model.Article, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.articles.ListByUserID(userID)
}

// Delete removes an article after an ownership check. The database
// cascades the image rows; their files on disk are handed to the cleanup
// queue, since the store cannot unlink them.
func (s *ArticleService) Delete(requesterID, articleID uint) error {
	if requesterID == 0 || articleID == 0 {
		return ErrInvalidInput
	}

	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if !CanMutate(article.UserID, requesterID) {
		return ErrForbidden
	}

	images, err := s.images.ListByArticleID(articleID)
	if err != nil {
		return err
	}

	if err := s.articles.Delete(articleID); err != nil {
		return err
	}

	if s.cleanup != nil && len(images) > 0 {
		paths := make([]string, 0, len(images))
		for _, img := range images {
			paths = append(paths, img.Filepath)
		}
		// The rows are already gone; a failed enqueue only leaves files
		// behind, it must not fail the delete.
		_ = s.cleanup.Publish(context.Background(), paths)
	}

	s.invalidateListing(context.Background())
	return nil
}

func (s *ArticleService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.MarkDirty(ctx)
	_ = s.cache.Invalidate(ctx)
}
