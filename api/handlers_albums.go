package api

import (
	"fmt"
	"net/http"
	"strconv"

	"bandserver/config"
	"bandserver/db"
	"bandserver/models"
	"bandserver/utils"

	"github.com/gin-gonic/gin"
)

// Admin catalog handlers: albums and songs.

// CreateAlbumRequest is the payload for a new album. The id and creation
// timestamp are server-assigned.
type CreateAlbumRequest struct {
	Title             string   `json:"title" binding:"required"`
	Cover             string   `json:"cover"`
	ReleaseDate       string   `json:"releaseDate"`
	Description       string   `json:"description"`
	Genre             string   `json:"genre"`
	Duration          string   `json:"duration"`
	TrackCount        int      `json:"trackCount"`
	ProductionCredits string   `json:"productionCredits"`
	MusicianCredits   []string `json:"musicianCredits"`
	LinerNotes        string   `json:"linerNotes"`
	IsActive          bool     `json:"isActive"`
}

// CreateAlbumHandler adds an album to the catalog.
// @Summary      Create Album
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        album body CreateAlbumRequest true "Album fields; only title is required."
// @Success      201  {object}  models.Album
// @Failure      400  {object}  utils.APIError
// @Failure      401  {object}  utils.APIError
// @Router       /admin/albums [post]
func CreateAlbumHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	album := database.CreateAlbum(models.Album{
		Title:             req.Title,
		Cover:             req.Cover,
		ReleaseDate:       req.ReleaseDate,
		Description:       req.Description,
		Genre:             req.Genre,
		Duration:          req.Duration,
		TrackCount:        req.TrackCount,
		ProductionCredits: req.ProductionCredits,
		MusicianCredits:   req.MusicianCredits,
		LinerNotes:        req.LinerNotes,
		IsActive:          req.IsActive,
	})
	c.JSON(http.StatusCreated, album)
}

// ListAlbumsHandler returns every album, active or not.
// @Summary      List Albums
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Album
// @Router       /admin/albums [get]
func ListAlbumsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.GetAllAlbums())
}

// GetAlbumHandler returns one album by id.
// @Summary      Get Album
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Album ID"
// @Success      200  {object}  models.Album
// @Failure      404  {object}  utils.APIError
// @Router       /admin/albums/{id} [get]
func GetAlbumHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	album, found := database.GetAlbumByID(id)
	if !found {
		utils.GinNotFound(c, fmt.Sprintf("Album with id %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, album)
}

// UpdateAlbumHandler applies a partial update to an album.
// @Summary      Update Album
// @Description  Shallow merge: only the fields present in the body change; everything else keeps its stored value.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Album ID"
// @Param        album body models.AlbumPatch true "Fields to change"
// @Success      200  {object}  models.Album
// @Failure      400  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Router       /admin/albums/{id} [put]
func UpdateAlbumHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch models.AlbumPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	album, err := database.UpdateAlbum(id, patch)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

// DeleteAlbumHandler removes an album and every song that references it.
// @Summary      Delete Album
// @Description  Deleting an album cascades to its songs: any song whose albumId matches is removed in the same operation.
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Album ID"
// @Success      204  "Album and its songs removed."
// @Failure      404  {object}  utils.APIError
// @Router       /admin/albums/{id} [delete]
func DeleteAlbumHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := database.DeleteAlbum(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Songs ---

// CreateSongRequest is the payload for a new song. The albumId reference is
// accepted as-is and not validated against the albums collection.
type CreateSongRequest struct {
	Title    string `json:"title" binding:"required"`
	AlbumID  int64  `json:"albumId"`
	Duration string `json:"duration"`
	AudioURL string `json:"audioUrl"`
	Lyrics   string `json:"lyrics"`
	Notes    string `json:"notes"`
	IsActive bool   `json:"isActive"`
}

// CreateSongHandler adds a song.
// @Summary      Create Song
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        song body CreateSongRequest true "Song fields; only title is required. albumId is not validated."
// @Success      201  {object}  models.Song
// @Failure      400  {object}  utils.APIError
// @Router       /admin/songs [post]
func CreateSongHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	song := database.CreateSong(models.Song{
		Title:    req.Title,
		AlbumID:  req.AlbumID,
		Duration: req.Duration,
		AudioURL: req.AudioURL,
		Lyrics:   req.Lyrics,
		Notes:    req.Notes,
		IsActive: req.IsActive,
	})
	c.JSON(http.StatusCreated, song)
}

// ListSongsHandler returns songs, optionally filtered by album.
// @Summary      List Songs
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Param        albumId query int false "Only songs of this album"
// @Success      200  {array}  models.Song
// @Failure      400  {object}  utils.APIError
// @Router       /admin/songs [get]
func ListSongsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	if raw := c.Query("albumId"); raw != "" {
		albumID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.GinBadRequest(c, fmt.Sprintf("Invalid albumId '%s': must be an integer.", raw))
			return
		}
		c.JSON(http.StatusOK, database.GetSongsByAlbum(albumID))
		return
	}
	c.JSON(http.StatusOK, database.GetAllSongs())
}

// GetSongHandler returns one song by id.
// @Summary      Get Song
// @Tags         Catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Song ID"
// @Success      200  {object}  models.Song
// @Failure      404  {object}  utils.APIError
// @Router       /admin/songs/{id} [get]
func GetSongHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	song, found := database.GetSongByID(id)
	if !found {
		utils.GinNotFound(c, fmt.Sprintf("Song with id %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, song)
}

// UpdateSongHandler applies a partial update to a song.
// @Summary      Update Song
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Song ID"
// @Param        song body models.SongPatch true "Fields to change"
// @Success      200  {object}  models.Song
// @Failure      400  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Router       /admin/songs/{id} [put]
func UpdateSongHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch models.SongPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	song, err := database.UpdateSong(id, patch)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// DeleteSongHandler removes a song.
// @Summary      Delete Song
// @Tags         Catalog
// @Security     BearerAuth
// @Param        id path int true "Song ID"
// @Success      204  "Song removed."
// @Failure      404  {object}  utils.APIError
// @Router       /admin/songs/{id} [delete]
func DeleteSongHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := database.DeleteSong(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
