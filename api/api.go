package api

import (
	"errors"
	"fmt"
	"strconv"

	"bandserver/db"
	"bandserver/utils"

	"github.com/gin-gonic/gin"
)

// Shared helpers for the handler files.

// parseIDParam reads the numeric :id path parameter. On failure it writes the
// 400 response itself and returns false.
func parseIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid id '%s': must be a positive integer.", raw))
		return 0, false
	}
	return id, true
}

// respondRepoError maps a repository error onto the right HTTP status. The
// repositories return wrapped db.ErrNotFound for missing targets; anything
// else is a server fault.
func respondRepoError(c *gin.Context, err error) {
	if errors.Is(err, db.ErrNotFound) {
		utils.GinNotFound(c, err.Error())
		return
	}
	utils.GinInternalServerError(c, err.Error())
}
