package api

import (
	"net/http"

	"bandserver/config"
	"bandserver/db"

	"github.com/gin-gonic/gin"
)

// Admin fan-wall moderation handlers. Comment creation and liking are public
// operations and live in handlers_site.go.

// ListCommentsHandler returns every comment regardless of status, optionally
// filtered to one status.
// @Summary      List Comments
// @Tags         FanWall
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter: pending, approved or rejected"
// @Success      200  {array}  models.Comment
// @Router       /admin/comments [get]
func ListCommentsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	comments := database.GetAllComments()
	if status := c.Query("status"); status != "" {
		filtered := comments[:0]
		for _, comment := range comments {
			if comment.Status == status {
				filtered = append(filtered, comment)
			}
		}
		comments = filtered
	}
	c.JSON(http.StatusOK, comments)
}

// ApproveCommentHandler marks a comment as approved, making it visible on the
// public fan wall. Works from any prior status, including rejected.
// @Summary      Approve Comment
// @Tags         FanWall
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200  {object}  models.Comment
// @Failure      404  {object}  utils.APIError
// @Router       /admin/comments/{id}/approve [put]
func ApproveCommentHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	comment, err := database.ApproveComment(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// RejectCommentHandler marks a comment as rejected. The comment is kept in
// the store for the audit trail; deletion is a separate operation.
// @Summary      Reject Comment
// @Tags         FanWall
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200  {object}  models.Comment
// @Failure      404  {object}  utils.APIError
// @Router       /admin/comments/{id}/reject [put]
func RejectCommentHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	comment, err := database.RejectComment(id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteCommentHandler removes a comment permanently.
// @Summary      Delete Comment
// @Tags         FanWall
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204  "Comment removed."
// @Failure      404  {object}  utils.APIError
// @Router       /admin/comments/{id} [delete]
func DeleteCommentHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := database.DeleteComment(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
