package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bandserver/config"
	"bandserver/db"
	"bandserver/utils"

	"github.com/gin-gonic/gin"
)

// SearchResponse wraps one page of search results.
type SearchResponse struct {
	Data  []json.RawMessage `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// SearchHandler filters one collection with the condition query language.
// @Summary      Search Content
// @Description  Filters a collection with repeated query parameters alternating conditions and logical operators.
// @Description  A condition is "path operator value", e.g. `genre equals "electronic"`. Operators: equals, notequals,
// @Description  contains, startswith, endswith, greaterthan, lessthan, greaterthanorequals, lessthanorequals; the
// @Description  string operators also accept an -insensitive suffix. Between conditions pass "and" or "or",
// @Description  evaluated left to right.
// @Tags         Search
// @Produce      json
// @Security     BearerAuth
// @Param        collection query string true "albums, songs, podcasts, media, products, uploads or comments"
// @Param        query query []string false "Alternating conditions and and/or" collectionFormat(multi)
// @Param        sortBy query string false "Field path to sort on (default id)"
// @Param        order query string false "asc or desc"
// @Param        page query int false "1-based page number"
// @Param        limit query int false "Page size, max 100"
// @Success      200  {object}  SearchResponse
// @Failure      400  {object}  utils.APIError "Unknown collection, malformed condition or type mismatch."
// @Router       /admin/search [get]
func SearchHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := db.SearchParams{
		Collection: c.Query("collection"),
		Query:      c.QueryArray("query"),
		SortBy:     c.Query("sortBy"),
		Order:      c.Query("order"),
		Page:       page,
		Limit:      limit,
	}

	data, total, err := database.Search(params)
	if err != nil {
		utils.GinBadRequest(c, err.Error())
		return
	}

	if params.Limit <= 0 {
		params.Limit = 20
	} else if params.Limit > 100 {
		params.Limit = 100
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	c.JSON(http.StatusOK, SearchResponse{
		Data:  data,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	})
}
