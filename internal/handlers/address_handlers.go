package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- Address Handlers ---
//

// AddAddressInput defines the JSON for creating an address.
// Every field is required.
type AddAddressInput struct {
	UserID      int64  `json:"userId" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Pincode     string `json:"pincode" binding:"required"`
	State       string `json:"state" binding:"required"`
	City        string `json:"city" binding:"required"`
	HouseNo     string `json:"houseNo" binding:"required"`
	AddressType string `json:"addressType" binding:"required"`
}

// AddAddress is the handler for POST /api/address/add
func (h *Handlers) AddAddress(c *gin.Context) {
	var input AddAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	result, err := h.DB.Exec(
		`INSERT INTO address (userId, fullName, phone, pincode, state, city, houseNo, addressType)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.UserID, input.FullName, input.Phone, input.Pincode,
		input.State, input.City, input.HouseNo, input.AddressType,
	)
	if err != nil {
		internalError(c, "Error adding address", err)
		return
	}
	addressID, _ := result.LastInsertId()

	c.JSON(http.StatusOK, gin.H{
		"message":   "Address added successfully",
		"addressId": addressID,
	})
}

// GetAddresses is the handler for GET /api/address?userId=...
func (h *Handlers) GetAddresses(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "UserId is required"})
		return
	}

	rows, err := h.DB.Query(
		`SELECT id, userId, fullName, phone, pincode, state, city, houseNo, addressType, createdAt
		 FROM address WHERE userId = ? ORDER BY createdAt DESC`,
		userID,
	)
	if err != nil {
		internalError(c, "Error fetching addresses", err)
		return
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.FullName, &a.Phone, &a.Pincode,
			&a.State, &a.City, &a.HouseNo, &a.AddressType, &a.CreatedAt,
		); err != nil {
			internalError(c, "Error scanning address", err)
			return
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		internalError(c, "Error iterating addresses", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Addresses fetched successfully",
		"addresses": addresses,
	})
}

// UpdateAddressInput defines the JSON for updating an address.
// Same required-field rule as create; userId is fixed at creation.
type UpdateAddressInput struct {
	FullName    string `json:"fullName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Pincode     string `json:"pincode" binding:"required"`
	State       string `json:"state" binding:"required"`
	City        string `json:"city" binding:"required"`
	HouseNo     string `json:"houseNo" binding:"required"`
	AddressType string `json:"addressType" binding:"required"`
}

// UpdateAddress is the handler for PUT /api/address/:id
func (h *Handlers) UpdateAddress(c *gin.Context) {
	addressID := c.Param("id")

	var input UpdateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	result, err := h.DB.Exec(
		`UPDATE address SET
			fullName = ?, phone = ?, pincode = ?,
			state = ?, city = ?, houseNo = ?, addressType = ?
		 WHERE id = ?`,
		input.FullName, input.Phone, input.Pincode,
		input.State, input.City, input.HouseNo, input.AddressType, addressID,
	)
	if err != nil {
		internalError(c, "Error updating address", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address updated successfully"})
}

// DeleteAddress is the handler for DELETE /api/address/:id
func (h *Handlers) DeleteAddress(c *gin.Context) {
	addressID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM address WHERE id = ?", addressID)
	if err != nil {
		internalError(c, "Error deleting address", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
