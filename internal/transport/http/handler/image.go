package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"encheres-api/internal/app"
	"encheres-api/internal/storage"
	"encheres-api/internal/transport/http/middleware"
	"encheres-api/internal/transport/http/response"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ImageHandler struct {
	imageService *app.ImageService
	uploads      *storage.Disk
	maxSize      int64
}

func NewImageHandler(imageService *app.ImageService, uploads *storage.Disk, maxSize int64) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		uploads:      uploads,
		maxSize:      maxSize,
	}
}

// Upload accepts a multipart form with an "image" file, writes it to the
// upload dir, then asks the service to link it. The service discards the
// file on any rejection.
func (h *ImageHandler) Upload(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	articleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing image file (form field 'image')")
		return
	}
	if file.Size > h.maxSize {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "image too large")
		return
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "unsupported image type")
		return
	}

	filename, path, err := h.uploads.Save(file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "store image failed")
		return
	}

	image, err := h.imageService.Attach(app.AttachImageInput{
		UserID:    userID,
		ArticleID: articleID,
		Filename:  filename,
		Path:      path,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrArticleNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		case errors.Is(err, app.ErrForbidden):
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "not allowed to add images to this article")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "upload image failed")
		}
		return
	}

	response.Created(c, gin.H{
		"image": gin.H{
			"id":       image.ID,
			"filename": image.Filename,
			"url":      "/uploads/" + image.Filename,
		},
	})
}

func (h *ImageHandler) ListByArticle(c *gin.Context) {
	articleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	images, err := h.imageService.ListByArticle(articleID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrArticleNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list images failed")
		}
		return
	}

	out := make([]gin.H, 0, len(images))
	for _, img := range images {
		out = append(out, gin.H{
			"id":          img.ID,
			"filename":    img.Filename,
			"url":         "/uploads/" + img.Filename,
			"uploaded_at": img.UploadedAt,
		})
	}
	response.OK(c, gin.H{"images": out})
}
