package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- Category & Filter Handlers ---
//

// GetAllCategories is the handler for GET /api/categories
func (h *Handlers) GetAllCategories(c *gin.Context) {
	rows, err := h.DB.Query("SELECT id, name, slug FROM categories")
	if err != nil {
		internalError(c, "Error fetching categories", err)
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug); err != nil {
			internalError(c, "Error scanning category", err)
			return
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		internalError(c, "Error iterating categories", err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// AddCategoryInput defines the JSON for creating a category.
// Slug is optional; when omitted we derive it from the name.
type AddCategoryInput struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// AddCategory is the handler for POST /api/categories/add
func (h *Handlers) AddCategory(c *gin.Context) {
	var input AddCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	if input.Slug == "" {
		input.Slug = slug.Make(input.Name)
	}

	result, err := h.DB.Exec(
		"INSERT INTO categories (name, slug) VALUES (?, ?)",
		input.Name, input.Slug,
	)
	if err != nil {
		internalError(c, "Error adding category", err)
		return
	}
	categoryID, _ := result.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"id":   categoryID,
		"name": input.Name,
		"slug": input.Slug,
	})
}

// GetFilters is the handler for GET /api/filters.
// The filters table holds a single row whose list columns are JSON text;
// we decode them before returning.
func (h *Handlers) GetFilters(c *gin.Context) {
	var (
		filters                                      models.Filters
		brandsRaw, colorsRaw, sizesRaw, discountsRaw []byte
	)

	err := h.DB.QueryRow(
		"SELECT id, brands, colors, sizes, discounts FROM filters LIMIT 1",
	).Scan(&filters.ID, &brandsRaw, &colorsRaw, &sizesRaw, &discountsRaw)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "No filters found"})
			return
		}
		internalError(c, "Error fetching filters", err)
		return
	}

	for _, col := range []struct {
		raw  []byte
		dest *[]string
	}{
		{brandsRaw, &filters.Brands},
		{colorsRaw, &filters.Colors},
		{sizesRaw, &filters.Sizes},
		{discountsRaw, &filters.Discounts},
	} {
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			internalError(c, "Error decoding filter column", err)
			return
		}
	}

	c.JSON(http.StatusOK, filters)
}
