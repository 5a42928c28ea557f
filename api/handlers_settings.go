package api

import (
	"fmt"
	"net/http"

	"bandserver/config"
	"bandserver/db"
	"bandserver/models"
	"bandserver/utils"

	"github.com/gin-gonic/gin"
)

// Admin settings handlers. Band profile and theme take partial updates;
// footer, SEO, system config and translations are replaced wholesale.

// GetBandProfileHandler returns the band profile singleton.
// @Summary      Get Band Profile
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.BandProfile
// @Router       /admin/settings/band [get]
func GetBandProfileHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.BandProfile())
}

// UpdateBandProfileHandler shallow-merges a patch over the band profile.
// @Summary      Update Band Profile
// @Description  Partial update; the social and sections blocks are replaced wholesale when present.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile body models.BandProfilePatch true "Fields to change"
// @Success      200  {object}  models.BandProfile
// @Failure      400  {object}  utils.APIError
// @Router       /admin/settings/band [put]
func UpdateBandProfileHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var patch models.BandProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	c.JSON(http.StatusOK, database.UpdateBandProfile(patch))
}

// ThemeResponse pairs the theme with its revision counter.
type ThemeResponse struct {
	Theme    models.Theme `json:"theme"`
	Revision int64        `json:"revision"`
}

// GetThemeHandler returns the theme and its current revision.
// @Summary      Get Theme
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ThemeResponse
// @Router       /admin/settings/theme [get]
func GetThemeHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	theme, revision := database.Theme()
	c.JSON(http.StatusOK, ThemeResponse{Theme: theme, Revision: revision})
}

// UpdateThemeHandler shallow-merges a patch over the theme. Every successful
// update bumps the revision counter, which clients watch to re-apply styling.
// @Summary      Update Theme
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        theme body models.ThemePatch true "Fields to change"
// @Success      200  {object}  ThemeResponse
// @Failure      400  {object}  utils.APIError
// @Router       /admin/settings/theme [put]
func UpdateThemeHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var patch models.ThemePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	theme, revision := database.UpdateTheme(patch)
	c.JSON(http.StatusOK, ThemeResponse{Theme: theme, Revision: revision})
}

// GetFooterHandler returns the footer configuration.
// @Summary      Get Footer Settings
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.FooterSettings
// @Router       /admin/settings/footer [get]
func GetFooterHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.FooterSettings())
}

// UpdateFooterHandler replaces the footer configuration wholesale.
// @Summary      Replace Footer Settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        footer body models.FooterSettings true "Complete footer configuration"
// @Success      200  {object}  models.FooterSettings
// @Failure      400  {object}  utils.APIError
// @Router       /admin/settings/footer [put]
func UpdateFooterHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var footer models.FooterSettings
	if err := c.ShouldBindJSON(&footer); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	c.JSON(http.StatusOK, database.ReplaceFooterSettings(footer))
}

// GetSeoHandler returns the SEO configuration.
// @Summary      Get SEO Settings
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SeoSettings
// @Router       /admin/settings/seo [get]
func GetSeoHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.SeoSettings())
}

// UpdateSeoHandler replaces the SEO configuration wholesale.
// @Summary      Replace SEO Settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        seo body models.SeoSettings true "Complete SEO configuration"
// @Success      200  {object}  models.SeoSettings
// @Failure      400  {object}  utils.APIError
// @Router       /admin/settings/seo [put]
func UpdateSeoHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var seo models.SeoSettings
	if err := c.ShouldBindJSON(&seo); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	c.JSON(http.StatusOK, database.ReplaceSeoSettings(seo))
}

// GetSystemConfigHandler returns the system configuration.
// @Summary      Get System Configuration
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SystemConfig
// @Router       /admin/settings/system [get]
func GetSystemConfigHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.SystemConfig())
}

// UpdateSystemConfigHandler replaces the system configuration wholesale.
// The Stripe and SMTP values are stored for the storefront; this server
// never calls out to either service.
// @Summary      Replace System Configuration
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        system body models.SystemConfig true "Complete system configuration"
// @Success      200  {object}  models.SystemConfig
// @Failure      400  {object}  utils.APIError
// @Router       /admin/settings/system [put]
func UpdateSystemConfigHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var system models.SystemConfig
	if err := c.ShouldBindJSON(&system); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	c.JSON(http.StatusOK, database.ReplaceSystemConfig(system))
}

// GetTranslationsHandler returns every language table.
// @Summary      Get Translations
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]map[string]string
// @Router       /admin/settings/translations [get]
func GetTranslationsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.Translations())
}

// UpdateTranslationsHandler replaces the editable language tables. The
// English table is the built-in fallback base: any "en" entry in the body is
// ignored and the built-in copy is returned in its place.
// @Summary      Replace Translations
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        translations body map[string]map[string]string true "Language tables keyed by code"
// @Success      200  {object}  map[string]map[string]string
// @Failure      400  {object}  utils.APIError
// @Router       /admin/settings/translations [put]
func UpdateTranslationsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var translations map[string]map[string]string
	if err := c.ShouldBindJSON(&translations); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	c.JSON(http.StatusOK, database.ReplaceTranslations(translations))
}

// LanguageResponse carries the site language code.
type LanguageResponse struct {
	Language string `json:"language"`
}

// GetLanguageHandler returns the current site language.
// @Summary      Get Site Language
// @Tags         Settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  LanguageResponse
// @Router       /admin/settings/language [get]
func GetLanguageHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, LanguageResponse{Language: database.Language()})
}

// SetLanguageRequest carries the new site language code.
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// SetLanguageHandler changes the site language ('it' or 'en').
// @Summary      Set Site Language
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        language body SetLanguageRequest true "Language code"
// @Success      200  {object}  LanguageResponse
// @Failure      400  {object}  utils.APIError "Malformed body or unsupported language code."
// @Router       /admin/settings/language [put]
func SetLanguageHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := database.SetLanguage(req.Language); err != nil {
		utils.GinBadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, LanguageResponse{Language: database.Language()})
}
