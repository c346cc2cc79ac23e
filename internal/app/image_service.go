package app

import (
	"encheres-api/internal/model"
)

type ImageService struct {
	articles ArticleStore
	images   ImageStore
	files    FileRemover
}

// AttachImageInput references a temporary file already written to disk
// by the transport layer.
type AttachImageInput struct {
	UserID    uint
	ArticleID uint
	Filename  string
	Path      string
}

func NewImageService(articles ArticleStore, images ImageStore, files FileRemover) *ImageService {
	return &ImageService{
		articles: articles,
		images:   images,
		files:    files,
	}
}

// Attach links an uploaded file to an article. The article's owner is
// the image's owner; on any rejection the temporary file is discarded so
// no orphaned upload stays on disk.
func (s *ImageService) Attach(input AttachImageInput) (*model.Image, error) {
	if input.UserID == 0 || input.ArticleID == 0 || input.Filename == "" || input.Path == "" {
		s.discard(input.Path)
		return nil, ErrInvalidInput
	}

	article, err := s.articles.GetByID(input.ArticleID)
	if err != nil {
		s.discard(input.Path)
		return nil, err
	}
	if article == nil {
		s.discard(input.Path)
		return nil, ErrArticleNotFound
	}
	if !CanMutate(article.UserID, input.UserID) {
		s.discard(input.Path)
		return nil, ErrForbidden
	}

	image := &model.Image{
		ArticleID: input.ArticleID,
		Filename:  input.Filename,
		Filepath:  input.Path,
	}
	if err := s.images.Create(image); err != nil {
		s.discard(input.Path)
		return nil, err
	}
	return image, nil
}

func (s *ImageService) ListByArticle(articleID uint) ([]model.Image, error) {
	if articleID == 0 {
		return nil, ErrInvalidInput
	}

	article, err := s.articles.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return s.images.ListByArticleID(articleID)
}

func (s *ImageService) discard(path string) {
	if s.files == nil || path == "" {
		return
	}
	_ = s.files.Remove(path)
}
