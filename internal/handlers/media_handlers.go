package handlers

import (
	"net/http"
	"time"

	"backoffice/internal/common"
	"backoffice/internal/services"

	"github.com/labstack/echo/v4"
)

const maxImageSize = 10 << 20 // 10 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// MediaHandlers handles image uploads for popups, banners, slides and
// instagram tiles. Clients upload first, then reference the returned key in
// the resource payload.
type MediaHandlers struct {
	storage services.StorageService
}

func NewMediaHandlers(storage services.StorageService) *MediaHandlers {
	return &MediaHandlers{storage: storage}
}

// Upload handles POST /uploads/images (multipart field "image").
func (h *MediaHandlers) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return common.SendValidationError(c, "image", "image file is required")
	}
	if fileHeader.Size > maxImageSize {
		return common.SendValidationError(c, "image", "image exceeds the 10 MiB limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return common.SendValidationError(c, "image", "unsupported image type")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded image")
	}
	defer file.Close()

	ctx := c.Request().Context()
	key := services.ObjectName("images", fileHeader.Filename)
	if err := h.storage.Upload(ctx, services.ImageBucket, key, contentType, file, fileHeader.Size); err != nil {
		return common.SendServerError(c, "Failed to store image")
	}

	url, err := h.storage.PresignedURL(ctx, services.ImageBucket, key, 24*time.Hour)
	if err != nil {
		return common.SendServerError(c, "Failed to generate image URL")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"key": key,
		"url": url,
	})
}
