package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- Product Handlers ---
//

// AddProduct is the handler for POST /api/products/add (multipart form).
// The image is mandatory; we persist the generated filename, never the bytes.
func (h *Handlers) AddProduct(c *gin.Context) {
	// 1. --- Require the image ---
	file, err := c.FormFile("productimg")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload product image"})
		return
	}

	// 2. --- Read the text fields ---
	title := c.PostForm("title")
	brand := c.PostForm("brand")
	description := c.PostForm("description")
	if title == "" || brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and brand are required"})
		return
	}

	mrp, err := strconv.ParseFloat(c.PostForm("mrp"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "mrp must be a number"})
		return
	}
	discountedPrice, err := strconv.ParseFloat(c.PostForm("discountedPrice"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "discountedPrice must be a number"})
		return
	}

	// 3. --- Save the image under a generated name ---
	// <epoch-millis><original extension>, e.g. 1724928000123.jpg
	if _, err := os.Stat(h.Config.UploadDir); os.IsNotExist(err) {
		os.MkdirAll(h.Config.UploadDir, 0755)
	}
	filename := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
	savePath := filepath.Join(h.Config.UploadDir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		internalError(c, "Error saving product image", err)
		return
	}

	// 4. --- Insert the product row ---
	result, err := h.DB.Exec(
		`INSERT INTO products (title, brand, mrp, discountedPrice, description, image)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, brand, mrp, discountedPrice, description, filename,
	)
	if err != nil {
		internalError(c, "Error inserting product", err)
		return
	}
	productID, _ := result.LastInsertId()

	// 5. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": models.Product{
			ProductID:       productID,
			Title:           title,
			Brand:           brand,
			MRP:             mrp,
			DiscountedPrice: discountedPrice,
			Description:     description,
			Image:           filename,
		},
	})
}

// scanProducts reads product rows into a slice, always returning a
// non-nil slice so empty results serialize as [] instead of null.
func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ProductID, &p.Title, &p.Brand, &p.MRP, &p.DiscountedPrice, &p.Description, &p.Image,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetAllProducts is the handler for GET /api/products
func (h *Handlers) GetAllProducts(c *gin.Context) {
	rows, err := h.DB.Query(
		"SELECT productId, title, brand, mrp, discountedPrice, description, image FROM products")
	if err != nil {
		internalError(c, "Error fetching products", err)
		return
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		internalError(c, "Error scanning products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID is the handler for GET /api/products/:id
func (h *Handlers) GetProductByID(c *gin.Context) {
	productID := c.Param("id")

	var p models.Product
	err := h.DB.QueryRow(
		"SELECT productId, title, brand, mrp, discountedPrice, description, image FROM products WHERE productId = ?",
		productID,
	).Scan(&p.ProductID, &p.Title, &p.Brand, &p.MRP, &p.DiscountedPrice, &p.Description, &p.Image)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		internalError(c, "Error fetching product", err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// SearchProducts is the handler for GET /api/products/search/st?q=...
// Case-insensitive substring match across title, brand and description.
// A query matching nothing is a 200 with an empty list, not a 404.
func (h *Handlers) SearchProducts(c *gin.Context) {
	searchQuery := c.Query("q")
	if strings.TrimSpace(searchQuery) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search query (q) is required"})
		return
	}

	likeValue := "%" + searchQuery + "%"
	rows, err := h.DB.Query(
		`SELECT productId, title, brand, mrp, discountedPrice, description, image
		 FROM products
		 WHERE title LIKE ? OR brand LIKE ? OR description LIKE ?`,
		likeValue, likeValue, likeValue,
	)
	if err != nil {
		internalError(c, "Error searching products", err)
		return
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		internalError(c, "Error scanning search results", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Search results",
		"total":   len(products),
		"data":    products,
	})
}
