package app

import (
	"context"

	"encheres-api/internal/model"
)

// In-memory stand-ins for the store interfaces.

type fakeUserStore struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uint]*model.User{}, nextID: 1}
}

func (s *fakeUserStore) Create(user *model.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	return s.users[id], nil
}

type fakeArticleStore struct {
	articles  map[uint]*model.Article
	nextID    uint
	listCalls int
}

func newFakeArticleStore() *fakeArticleStore {
	return &fakeArticleStore{articles: map[uint]*model.Article{}, nextID: 1}
}

func (s *fakeArticleStore) Create(article *model.Article) error {
	article.ID = s.nextID
	s.nextID++
	s.articles[article.ID] = article
	return nil
}

func (s *fakeArticleStore) GetByID(id uint) (*model.Article, error) {
	return s.articles[id], nil
}

func (s *fakeArticleStore) GetByIDWithAuthor(id uint) (*model.ArticleWithAuthor, error) {
	a := s.articles[id]
	if a == nil {
		return nil, nil
	}
	return &model.ArticleWithAuthor{Article: *a}, nil
}

func (s *fakeArticleStore) ListAllWithAuthor() ([]model.ArticleWithAuthor, error) {
	s.listCalls++
	out := make([]model.ArticleWithAuthor, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, model.ArticleWithAuthor{Article: *a})
	}
	return out, nil
}

func (s *fakeArticleStore) ListByUserID(userID uint) ([]model.Article, error) {
	var out []model.Article
	for _, a := range s.articles {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeArticleStore) Delete(id uint) error {
	delete(s.articles, id)
	return nil
}

type fakeImageStore struct {
	images map[uint][]model.Image
	nextID uint
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{images: map[uint][]model.Image{}, nextID: 1}
}

func (s *fakeImageStore) Create(image *model.Image) error {
	image.ID = s.nextID
	s.nextID++
	s.images[image.ArticleID] = append(s.images[image.ArticleID], *image)
	return nil
}

func (s *fakeImageStore) ListByArticleID(articleID uint) ([]model.Image, error) {
	return s.images[articleID], nil
}

type fakeListingCache struct {
	dirty    bool
	stored   []model.ArticleWithAuthor
	hasValue bool

	getCalls        int
	setCalls        int
	markDirtyCalls  int
	invalidateCalls int
}

func (c *fakeListingCache) GetAll(context.Context) ([]model.ArticleWithAuthor, bool, error) {
	c.getCalls++
	if !c.hasValue {
		return nil, false, nil
	}
	return c.stored, true, nil
}

func (c *fakeListingCache) SetAll(_ context.Context, articles []model.ArticleWithAuthor) error {
	c.setCalls++
	c.stored = articles
	c.hasValue = true
	return nil
}

func (c *fakeListingCache) Invalidate(context.Context) error {
	c.invalidateCalls++
	c.stored = nil
	c.hasValue = false
	return nil
}

func (c *fakeListingCache) MarkDirty(context.Context) error {
	c.markDirtyCalls++
	c.dirty = true
	return nil
}

func (c *fakeListingCache) IsDirty(context.Context) (bool, error) {
	return c.dirty, nil
}

type recordingPublisher struct {
	published [][]string
}

func (p *recordingPublisher) Publish(_ context.Context, paths []string) error {
	p.published = append(p.published, paths)
	return nil
}

type removerFunc func(path string) error

func (f removerFunc) Remove(path string) error { return f(path) }
