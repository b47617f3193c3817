package handlers

import (
	"log"
	"net/http"
	"time"

	"backoffice/internal/caching"
	"backoffice/internal/common"
	"backoffice/internal/repositories"

	"github.com/labstack/echo/v4"
)

const languageCacheTTL = 24 * time.Hour

// LanguageHandlers serves the storefront language list. The list changes
// rarely and is cached aggressively.
type LanguageHandlers struct {
	languageRepo repositories.LanguageRepository
	cacheService caching.CacheService
}

func NewLanguageHandlers(languageRepo repositories.LanguageRepository, cacheService caching.CacheService) *LanguageHandlers {
	return &LanguageHandlers{
		languageRepo: languageRepo,
		cacheService: cacheService,
	}
}

// List handles GET /languages
func (h *LanguageHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	if cached, err := h.cacheService.GetLanguages(ctx); cached != nil {
		return c.JSON(http.StatusOK, cached)
	} else if err != nil {
		log.Printf("language cache read failed: %v", err)
	}

	languages, err := h.languageRepo.List(ctx)
	if err != nil {
		return common.SendServerError(c, "Failed to load languages")
	}

	if err := h.cacheService.SetLanguages(ctx, languages, languageCacheTTL); err != nil {
		log.Printf("language cache write failed: %v", err)
	}
	return c.JSON(http.StatusOK, languages)
}
