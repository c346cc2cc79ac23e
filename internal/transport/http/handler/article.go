package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"encheres-api/internal/app"
	"encheres-api/internal/transport/http/middleware"
	"encheres-api/internal/transport/http/response"
)

type ArticleHandler struct {
	articleService *app.ArticleService
}

type CreateArticleRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	PrixDepart  float64 `json:"prix_depart" binding:"required"`
}

func NewArticleHandler(articleService *app.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	article, err := h.articleService.Create(app.CreateArticleInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		PrixDepart:  req.PrixDepart,
	})
	if err != nil {
		var validationErr *app.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.ErrorDetails(c, http.StatusBadRequest, response.CodeValidation, "invalid article data", validationErr.Violations)
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create article failed")
		}
		return
	}

	response.Created(c, gin.H{"article": article})
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list articles failed")
		return
	}
	response.OK(c, gin.H{"articles": articles})
}

func (h *ArticleHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	articles, err := h.articleService.ListMine(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list own articles failed")
		return
	}
	response.OK(c, gin.H{"articles": articles})
}

func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrArticleNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch article failed")
		}
		return
	}
	response.OK(c, gin.H{"article": article})
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.Delete(userID, id); err != nil {
		switch {
		case errors.Is(err, app.ErrArticleNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "delete article failed")
		}
		return
	}
	response.OK(c, gin.H{"message": "article deleted"})
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid id")
		return 0, false
	}
	return uint(parsed), true
}
