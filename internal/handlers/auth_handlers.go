package handlers

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/models"
)

//
// --- Auth Flow Handlers (refresh / logout / OTP reset) ---
//

// otpTTLMinutes bounds how long a password-reset code stays usable.
const otpTTLMinutes = 10

// RefreshTokenInput defines the JSON carrying a refresh token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshAccessToken is the handler for POST /api/auth/refresh-token.
// The token must both exist as a row (not logged out) and verify as a
// JWT (not expired/forged); either failure is a uniform 403.
func (h *Handlers) RefreshAccessToken(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RefreshTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Refresh token is required"})
		return
	}

	// 2. --- The row must still exist (logout deletes it) ---
	var tokenRow models.RefreshToken
	err := h.DB.QueryRow(
		"SELECT id, userId, token FROM refresh_tokens WHERE token = ?",
		input.RefreshToken,
	).Scan(&tokenRow.ID, &tokenRow.UserID, &tokenRow.Token)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid refresh token"})
			return
		}
		internalError(c, "Error looking up refresh token", err)
		return
	}

	// 3. --- Verify the JWT itself ---
	claims, err := h.Tokens.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired refresh token"})
		return
	}

	// 4. --- Mint a new access token for the same identity ---
	accessToken, err := h.Tokens.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		internalError(c, "Error generating access token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "New access token generated",
		"accessToken": accessToken,
	})
}

// Logout is the handler for POST /api/auth/logout.
// Deleting an already-deleted token is still a success (idempotent).
func (h *Handlers) Logout(c *gin.Context) {
	var input RefreshTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Refresh token is required"})
		return
	}

	if _, err := h.DB.Exec("DELETE FROM refresh_tokens WHERE token = ?", input.RefreshToken); err != nil {
		internalError(c, "Error deleting refresh token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// SendOTPInput defines the JSON for requesting a reset code.
type SendOTPInput struct {
	Email string `json:"email" binding:"required,email"`
}

// generateOTP returns a 6-digit numeric code from a CSPRNG.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// SendOTP is the handler for POST /api/auth/send-otp.
// The code is stored keyed by email. It is echoed in the response ONLY
// under APP_ENV=development; production clients get it by email.
func (h *Handlers) SendOTP(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input SendOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	// 2. --- Generate & store the code ---
	otp, err := generateOTP()
	if err != nil {
		internalError(c, "Error generating OTP", err)
		return
	}

	if _, err := h.DB.Exec(
		"INSERT INTO password_reset_otps (email, otp) VALUES (?, ?)",
		input.Email, otp,
	); err != nil {
		internalError(c, "Error saving OTP", err)
		return
	}

	// TODO: deliver the OTP by email once an SMTP sender is configured.

	// 3. --- Respond (debug echo gated behind development mode) ---
	body := gin.H{
		"message": "OTP sent successfully",
		"email":   input.Email,
	}
	if h.Config.IsDevelopment() {
		body["otp"] = otp
	}
	c.JSON(http.StatusOK, body)
}

// ResetPasswordInput defines the JSON for completing a password reset.
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetPassword is the handler for POST /api/auth/reset-password.
// The most recent matching OTP wins, and it must be younger than the TTL.
// Every OTP row for the email is deleted afterwards, not just the match.
func (h *Handlers) ResetPassword(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email, otp & newPassword are required"})
		return
	}

	// 2. --- Check the OTP ---
	var otpID int64
	err := h.DB.QueryRow(
		`SELECT id FROM password_reset_otps
		 WHERE email = ? AND otp = ? AND createdAt > NOW() - INTERVAL ? MINUTE
		 ORDER BY createdAt DESC LIMIT 1`,
		input.Email, input.OTP, otpTTLMinutes,
	).Scan(&otpID)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired OTP"})
			return
		}
		internalError(c, "Error checking OTP", err)
		return
	}

	// 3. --- Hash & store the new password ---
	var password models.Password
	if err := password.Set(input.NewPassword); err != nil {
		internalError(c, "Error hashing new password", err)
		return
	}

	if _, err := h.DB.Exec(
		"UPDATE users SET password = ? WHERE email = ?",
		password.Hash, input.Email,
	); err != nil {
		internalError(c, "Error updating password", err)
		return
	}

	// 4. --- Burn every OTP issued for this email ---
	if _, err := h.DB.Exec(
		"DELETE FROM password_reset_otps WHERE email = ?",
		input.Email,
	); err != nil {
		internalError(c, "Error deleting OTPs", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset successfully",
		"email":   input.Email,
	})
}
