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

// Public site handlers. No authentication; reads only return active content
// and approved comments. The two write operations (posting a comment, liking
// one) are the fan wall interactions.

// maintenanceGuard blocks public reads while maintenance mode is on. Admin
// routes are unaffected so the mode can be switched back off.
func maintenanceGuard(c *gin.Context, database *db.Database) bool {
	if database.SystemConfig().Security.MaintenanceMode {
		utils.GinError(c, http.StatusServiceUnavailable, "Site is under maintenance. Check back soon.")
		return false
	}
	return true
}

// SiteContentResponse is the aggregate payload the public site renders from.
type SiteContentResponse struct {
	Band          models.BandProfile    `json:"band"`
	Theme         models.Theme          `json:"theme"`
	ThemeRevision int64                 `json:"themeRevision"`
	Footer        models.FooterSettings `json:"footer"`
	Seo           models.SeoSettings    `json:"seo"`
	Language      string                `json:"language"`
	Translations  map[string]string     `json:"translations"`
	Albums        []models.Album        `json:"albums"`
	Songs         []models.Song         `json:"songs"`
	Podcasts      []models.Podcast      `json:"podcasts"`
	Media         []models.MediaItem    `json:"media"`
	Products      []models.Product      `json:"products"`
	Comments      []models.Comment      `json:"comments"`
}

// SiteContentHandler returns everything the public site needs in one call:
// settings, the translation table for the current language, active catalog
// and store content, and approved fan wall comments.
// @Summary      Get Site Content
// @Tags         Site
// @Produce      json
// @Param        lang query string false "Override the site language for the translation table"
// @Success      200  {object}  SiteContentResponse
// @Failure      503  {object}  utils.APIError "Maintenance mode is on."
// @Router       /site/content [get]
func SiteContentHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}

	lang := database.Language()
	if override := c.Query("lang"); override != "" {
		if _, ok := database.TranslationsFor(override); ok {
			lang = override
		}
	}
	translations, ok := database.TranslationsFor(lang)
	if !ok {
		translations, _ = database.TranslationsFor("en")
	}

	theme, revision := database.Theme()
	c.JSON(http.StatusOK, SiteContentResponse{
		Band:          database.BandProfile(),
		Theme:         theme,
		ThemeRevision: revision,
		Footer:        database.FooterSettings(),
		Seo:           database.SeoSettings(),
		Language:      lang,
		Translations:  translations,
		Albums:        activeAlbums(database),
		Songs:         activeSongs(database),
		Podcasts:      activePodcasts(database),
		Media:         activeMedia(database),
		Products:      activeProducts(database),
		Comments:      approvedComments(database),
	})
}

// SiteAlbumsHandler returns the active albums.
// @Summary      List Active Albums
// @Tags         Site
// @Produce      json
// @Success      200  {array}  models.Album
// @Failure      503  {object}  utils.APIError
// @Router       /site/albums [get]
func SiteAlbumsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	c.JSON(http.StatusOK, activeAlbums(database))
}

// SiteSongsHandler returns the active songs of one album.
// @Summary      List Active Album Songs
// @Tags         Site
// @Produce      json
// @Param        id path int true "Album ID"
// @Success      200  {array}  models.Song
// @Failure      404  {object}  utils.APIError
// @Router       /site/albums/{id}/songs [get]
func SiteSongsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	album, found := database.GetAlbumByID(id)
	if !found || !album.IsActive {
		utils.GinNotFound(c, fmt.Sprintf("Album with id %d not found.", id))
		return
	}

	songs := make([]models.Song, 0)
	for _, song := range database.GetSongsByAlbum(id) {
		if song.IsActive {
			songs = append(songs, song)
		}
	}
	c.JSON(http.StatusOK, songs)
}

// SitePodcastsHandler returns the active podcast episodes.
// @Summary      List Active Podcast Episodes
// @Tags         Site
// @Produce      json
// @Success      200  {array}  models.Podcast
// @Failure      503  {object}  utils.APIError
// @Router       /site/podcasts [get]
func SitePodcastsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	c.JSON(http.StatusOK, activePodcasts(database))
}

// SiteMediaHandler returns the active gallery items.
// @Summary      List Active Media
// @Tags         Site
// @Produce      json
// @Success      200  {array}  models.MediaItem
// @Failure      503  {object}  utils.APIError
// @Router       /site/media [get]
func SiteMediaHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	c.JSON(http.StatusOK, activeMedia(database))
}

// SiteProductsHandler returns the active merch items.
// @Summary      List Active Products
// @Tags         Site
// @Produce      json
// @Success      200  {array}  models.Product
// @Failure      503  {object}  utils.APIError
// @Router       /site/products [get]
func SiteProductsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	c.JSON(http.StatusOK, activeProducts(database))
}

// SiteCommentsHandler returns the approved fan wall comments.
// @Summary      List Approved Comments
// @Tags         Site
// @Produce      json
// @Success      200  {array}  models.Comment
// @Failure      503  {object}  utils.APIError
// @Router       /site/comments [get]
func SiteCommentsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	c.JSON(http.StatusOK, approvedComments(database))
}

// PostCommentRequest is a fan wall submission.
type PostCommentRequest struct {
	Username string `json:"username" binding:"required,max=60"`
	Message  string `json:"message" binding:"required,max=1000"`
}

// PostCommentHandler accepts a fan wall comment. With moderation on (the
// default) the comment starts pending and only appears publicly once an
// admin approves it; with moderation off it is approved immediately.
// @Summary      Post Comment
// @Tags         Site
// @Accept       json
// @Produce      json
// @Param        comment body PostCommentRequest true "Username and message"
// @Success      201  {object}  models.Comment
// @Failure      400  {object}  utils.APIError
// @Failure      503  {object}  utils.APIError
// @Router       /site/comments [post]
func PostCommentHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	var req PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	status := models.CommentPending
	if !database.SystemConfig().Security.RequireModeration {
		status = models.CommentApproved
	}

	comment := database.CreateComment(models.Comment{
		Username: req.Username,
		Message:  req.Message,
		Status:   status,
	})
	c.JSON(http.StatusCreated, comment)
}

// LikeCommentHandler toggles the like flag on a comment.
// @Summary      Toggle Comment Like
// @Tags         Site
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200  {object}  models.Comment
// @Failure      404  {object}  utils.APIError
// @Router       /site/comments/{id}/like [put]
func LikeCommentHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if !maintenanceGuard(c, database) {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	comment, err := database.ToggleCommentLike(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// --- Active-content filters ---

func activeAlbums(database *db.Database) []models.Album {
	out := make([]models.Album, 0)
	for _, album := range database.GetAllAlbums() {
		if album.IsActive {
			out = append(out, album)
		}
	}
	return out
}

func activeSongs(database *db.Database) []models.Song {
	out := make([]models.Song, 0)
	for _, song := range database.GetAllSongs() {
		if song.IsActive {
			out = append(out, song)
		}
	}
	return out
}

func activePodcasts(database *db.Database) []models.Podcast {
	out := make([]models.Podcast, 0)
	for _, episode := range database.GetAllPodcasts() {
		if episode.IsActive {
			out = append(out, episode)
		}
	}
	return out
}

func activeMedia(database *db.Database) []models.MediaItem {
	out := make([]models.MediaItem, 0)
	for _, item := range database.GetAllMedia() {
		if item.IsActive {
			out = append(out, item)
		}
	}
	return out
}

func activeProducts(database *db.Database) []models.Product {
	out := make([]models.Product, 0)
	for _, product := range database.GetAllProducts() {
		if product.IsActive {
			out = append(out, product)
		}
	}
	return out
}

func approvedComments(database *db.Database) []models.Comment {
	out := make([]models.Comment, 0)
	for _, comment := range database.GetAllComments() {
		if comment.Status == models.CommentApproved {
			out = append(out, comment)
		}
	}
	return out
}
