package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"

	"github.com/wearzy/wearzy-api/internal/auth"
	"github.com/wearzy/wearzy-api/internal/config"
	"github.com/wearzy/wearzy-api/internal/payment"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB      *sql.DB
	Tokens  *auth.TokenManager
	Gateway payment.Gateway
	Config  *config.Config
}

// internalError logs the real error server-side and sends the client the
// generic message. Raw driver/library errors never reach the response body.
func internalError(c *gin.Context, context string, err error) {
	log.Printf("%s: %v", context, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// isDuplicateEntry reports whether err is MySQL's unique-key violation
// (errno 1062), which we surface as a 409 Conflict.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
