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

// Admin merch store handlers.

// CreateProductRequest is the payload for a new merch item.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock" binding:"gte=0"`
	IsLimited   bool    `json:"isLimited"`
	IsActive    bool    `json:"isActive"`
}

// CreateProductHandler adds a merch item.
// @Summary      Create Product
// @Tags         Store
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product body CreateProductRequest true "Product fields; name is required, price and stock must be non-negative."
// @Success      201  {object}  models.Product
// @Failure      400  {object}  utils.APIError
// @Router       /admin/products [post]
func CreateProductHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	product := database.CreateProduct(models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
		IsLimited:   req.IsLimited,
		IsActive:    req.IsActive,
	})
	c.JSON(http.StatusCreated, product)
}

// ListProductsHandler returns every product.
// @Summary      List Products
// @Tags         Store
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Product
// @Router       /admin/products [get]
func ListProductsHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	c.JSON(http.StatusOK, database.GetAllProducts())
}

// GetProductHandler returns one product by id.
// @Summary      Get Product
// @Tags         Store
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Product ID"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  utils.APIError
// @Router       /admin/products/{id} [get]
func GetProductHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, found := database.GetProductByID(id)
	if !found {
		utils.GinNotFound(c, fmt.Sprintf("Product with id %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProductHandler applies a partial update to a product.
// @Summary      Update Product
// @Tags         Store
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Product ID"
// @Param        product body models.ProductPatch true "Fields to change"
// @Success      200  {object}  models.Product
// @Failure      400  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Router       /admin/products/{id} [put]
func UpdateProductHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	product, err := database.UpdateProduct(id, patch)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProductHandler removes a product.
// @Summary      Delete Product
// @Tags         Store
// @Security     BearerAuth
// @Param        id path int true "Product ID"
// @Success      204  "Product removed."
// @Failure      404  {object}  utils.APIError
// @Router       /admin/products/{id} [delete]
func DeleteProductHandler(c *gin.Context, database *db.Database, cfg *config.Config) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := database.DeleteProduct(id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
