package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/middleware"
	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- User Handlers ---
//

// RegisterUserInput defines the JSON for user registration.
type RegisterUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterUser is the handler for POST /api/user/register.
// A duplicate email is a 409; every other failure is a generic 500 with
// the detail kept in the server log only.
func (h *Handlers) RegisterUser(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name, email & password are required"})
		return
	}

	// 2. --- Hash the Password ---
	var password models.Password
	if err := password.Set(input.Password); err != nil {
		internalError(c, "Error hashing password", err)
		return
	}

	// 3. --- Insert the user ---
	_, err := h.DB.Exec(
		"INSERT INTO users (name, email, password) VALUES (?, ?, ?)",
		input.Name, input.Email, password.Hash,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "This email address is already registered."})
			return
		}
		internalError(c, "Error registering user", err)
		return
	}

	// 4. --- Send Success Response ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "Register successfully",
		"user": gin.H{
			"name":  input.Name,
			"email": input.Email,
		},
	})
}

// LoginInput defines the JSON for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// invalidCredentials is the single 401 body for both unknown email and
// wrong password, so callers cannot enumerate registered addresses.
func invalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
}

// Login is the handler for POST /api/user/login.
// On success it issues an access + refresh token pair and persists the
// refresh token row.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email & password are required"})
		return
	}

	// 2. --- Fetch the user by email ---
	var user models.User
	err := h.DB.QueryRow(
		"SELECT userId, name, email, password FROM users WHERE email = ?",
		input.Email,
	).Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash)

	if err != nil {
		if err == sql.ErrNoRows {
			invalidCredentials(c)
			return
		}
		internalError(c, "Error fetching user for login", err)
		return
	}

	// 3. --- Verify the password ---
	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		internalError(c, "Error comparing password", err)
		return
	}
	if !match {
		invalidCredentials(c)
		return
	}

	// 4. --- Issue the token pair ---
	accessToken, err := h.Tokens.GenerateAccessToken(user.UserID, user.Email)
	if err != nil {
		internalError(c, "Error generating access token", err)
		return
	}
	refreshToken, err := h.Tokens.GenerateRefreshToken(user.UserID, user.Email)
	if err != nil {
		internalError(c, "Error generating refresh token", err)
		return
	}

	// 5. --- Persist the refresh token ---
	_, err = h.DB.Exec(
		"INSERT INTO refresh_tokens (userId, token) VALUES (?, ?)",
		user.UserID, refreshToken,
	)
	if err != nil {
		internalError(c, "Error saving refresh token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// GetAllUsers is the handler for GET /api/user.
// The password hash stays out of the response via the model's json:"-" tag.
func (h *Handlers) GetAllUsers(c *gin.Context) {
	rows, err := h.DB.Query("SELECT userId, name, email FROM users")
	if err != nil {
		internalError(c, "Error fetching users", err)
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Name, &u.Email); err != nil {
			internalError(c, "Error scanning user", err)
			return
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		internalError(c, "Error iterating users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetProfile is the handler for GET /api/user/profile.
// The middleware has already verified the bearer token; we just echo the
// claims back. No database lookup — the token IS the profile.
func (h *Handlers) GetProfile(c *gin.Context) {
	userID, _ := c.Get(middleware.ContextUserID)
	email, _ := c.Get(middleware.ContextEmail)

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"userId": userID,
			"email":  email,
		},
	})
}

// UpdateProfileInput defines the JSON for a profile update.
type UpdateProfileInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateProfile is the handler for PUT /api/user/profile/update/:userId
func (h *Handlers) UpdateProfile(c *gin.Context) {
	userID := c.Param("userId")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and Email are required"})
		return
	}

	result, err := h.DB.Exec(
		"UPDATE users SET name = ?, email = ? WHERE userId = ?",
		input.Name, input.Email, userID,
	)
	if err != nil {
		// email carries a unique key, so an update can collide too
		if isDuplicateEntry(err) {
			c.JSON(http.StatusConflict, gin.H{"message": "This email address is already registered."})
			return
		}
		internalError(c, "Error updating profile", err)
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Data updated successfully",
		"name":    input.Name,
		"email":   input.Email,
	})
}
