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

// Admin content handlers: podcast episodes, gallery media and upload records.

// CreatePodcastRequest is the payload for a new episode. PublishDate defaults
// to the current time when omitted.
type CreatePodcastRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	AudioURL    string `json:"audioUrl"`
	IsNew       bool   `json:"isNew"`
	IsActive    bool   `json:"isActive"`
	PublishDate string `json:"publishDate"`
}

// CreatePodcastHandler adds a podcast episode.
// @Summary      Create Podcast Episode
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        episode body CreatePodcastRequest true "Episode fields; only title is required."
// @Success      201  {object}  models.Podcast
// @Failure      400  {object}  utils.APIError
// @Router       /admin/podcasts [post]
func CreatePodcastHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req CreatePodcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	episode := database.CreatePodcast(models.Podcast{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		AudioURL:    req.AudioURL,
		IsNew:       req.IsNew,
		IsActive:    req.IsActive,
		PublishDate: req.PublishDate,
	})
	c.JSON(http.StatusCreated, episode)
}

// ListPodcastsHandler returns every episode.
// @Summary      List Podcast Episodes
// @Tags         Content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Podcast
// @Router       /admin/podcasts [get]
func ListPodcastsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.GetAllPodcasts())
}

// UpdatePodcastHandler applies a partial update to an episode.
// @Summary      Update Podcast Episode
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Episode ID"
// @Param        episode body models.PodcastPatch true "Fields to change"
// @Success      200  {object}  models.Podcast
// @Failure      400  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Router       /admin/podcasts/{id} [put]
func UpdatePodcastHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch models.PodcastPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	episode, err := database.UpdatePodcast(id, patch)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, episode)
}

// DeletePodcastHandler removes an episode.
// @Summary      Delete Podcast Episode
// @Tags         Content
// @Security     BearerAuth
// @Param        id path int true "Episode ID"
// @Success      204  "Episode removed."
// @Failure      404  {object}  utils.APIError
// @Router       /admin/podcasts/{id} [delete]
func DeletePodcastHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := database.DeletePodcast(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Media ---

// CreateMediaRequest is the payload for a new gallery item.
type CreateMediaRequest struct {
	Type        string `json:"type" binding:"required,oneof=image video"`
	Title       string `json:"title" binding:"required"`
	URL         string `json:"url" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    bool   `json:"isActive"`
}

// CreateMediaHandler adds a gallery item.
// @Summary      Create Media Item
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        media body CreateMediaRequest true "Gallery item; type must be 'image' or 'video'."
// @Success      201  {object}  models.MediaItem
// @Failure      400  {object}  utils.APIError
// @Router       /admin/media [post]
func CreateMediaHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	item := database.CreateMedia(models.MediaItem{
		Type:        req.Type,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    req.IsActive,
	})
	c.JSON(http.StatusCreated, item)
}

// ListMediaHandler returns every gallery item.
// @Summary      List Media Items
// @Tags         Content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.MediaItem
// @Router       /admin/media [get]
func ListMediaHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.GetAllMedia())
}

// UpdateMediaHandler applies a partial update to a gallery item.
// @Summary      Update Media Item
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Media ID"
// @Param        media body models.MediaPatch true "Fields to change"
// @Success      200  {object}  models.MediaItem
// @Failure      400  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Router       /admin/media/{id} [put]
func UpdateMediaHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch models.MediaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	item, err := database.UpdateMedia(id, patch)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMediaHandler removes a gallery item.
// @Summary      Delete Media Item
// @Tags         Content
// @Security     BearerAuth
// @Param        id path int true "Media ID"
// @Success      204  "Item removed."
// @Failure      404  {object}  utils.APIError
// @Router       /admin/media/{id} [delete]
func DeleteMediaHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := database.DeleteMedia(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Uploads ---

// PutUploadRequest is the payload for an upload record. Re-putting the same
// id replaces the record, which is how a client reports progress from
// 'uploading' to 'completed'.
type PutUploadRequest struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type"`
	Size   int64  `json:"size"`
	URL    string `json:"url"`
	Status string `json:"status" binding:"omitempty,oneof=uploading completed"`
}

// PutUploadHandler upserts an upload record. When no URL is supplied the
// server derives a collision-safe storage name from the original file name.
// @Summary      Put Upload Record
// @Description  Upsert: a zero id creates a new record, an existing id replaces it wholesale. Status defaults to 'uploading'.
// @Tags         Content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        upload body PutUploadRequest true "Upload record"
// @Success      200  {object}  models.Upload
// @Failure      400  {object}  utils.APIError
// @Router       /admin/uploads [put]
func PutUploadHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req PutUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	url := req.URL
	if url == "" {
		url = "/uploads/" + utils.GenerateStorageName(req.Name)
	}

	upload := database.PutUpload(models.Upload{
		ID:     req.ID,
		Name:   req.Name,
		Type:   req.Type,
		Size:   req.Size,
		URL:    url,
		Status: req.Status,
	})
	c.JSON(http.StatusOK, upload)
}

// ListUploadsHandler returns every upload record.
// @Summary      List Upload Records
// @Tags         Content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Upload
// @Router       /admin/uploads [get]
func ListUploadsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.GetAllUploads())
}

// DeleteUploadHandler removes an upload record.
// @Summary      Delete Upload Record
// @Tags         Content
// @Security     BearerAuth
// @Param        id path int true "Upload ID"
// @Success      204  "Record removed."
// @Failure      404  {object}  utils.APIError
// @Router       /admin/uploads/{id} [delete]
func DeleteUploadHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := database.DeleteUpload(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
