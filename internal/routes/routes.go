package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wearzy/wearzy-api/internal/handlers"
	"github.com/wearzy/wearzy-api/internal/middleware"
)

// SetupRouter wires every route of the storefront API onto one engine.
// All JSON routes live under /api; uploaded product images are served
// read-only under /productImages.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must be the very first thing the router uses.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Static product images ---
	router.Static("/productImages", h.Config.UploadDir)

	api := router.Group("/api")
	{
		// --- Ping Route (Public) ---
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Product Routes ---
		api.POST("/products/add", h.AddProduct)
		api.GET("/products", h.GetAllProducts)
		// NOTE: the search route must be registered with a path that cannot
		// collide with /products/:id, hence the /search/st segment.
		api.GET("/products/search/st", h.SearchProducts)
		api.GET("/products/:id", h.GetProductByID)

		// --- Category & Filter Routes ---
		api.GET("/categories", h.GetAllCategories)
		api.POST("/categories/add", h.AddCategory)
		api.GET("/filters", h.GetFilters)

		// --- Cart Routes ---
		api.POST("/cart/add", h.AddToCart)
		api.GET("/cart/:userId", h.GetCart)
		api.PUT("/cart/update/:id", h.UpdateCartQuantity)
		api.DELETE("/cart/:id", h.RemoveCartItem)

		// --- Wishlist Routes ---
		api.POST("/wishlist/add", h.AddToWishlist)
		api.GET("/wishlist/:userId", h.GetWishlist)
		api.DELETE("/wishlist/:id", h.RemoveWishlistItem)

		// --- Order Routes ---
		api.POST("/order/place", h.PlaceOrder)
		api.GET("/order/my-orders", h.GetMyOrders)
		api.GET("/order/:id", h.GetOrderDetails)
		api.PUT("/order/status/:id", h.UpdateOrderStatus)

		// --- Address Routes ---
		api.POST("/address/add", h.AddAddress)
		api.GET("/address", h.GetAddresses)
		api.PUT("/address/:id", h.UpdateAddress)
		api.DELETE("/address/:id", h.DeleteAddress)

		// --- Payment Routes ---
		api.POST("/payment/create", h.CreatePayment)
		api.POST("/payment/verify", h.VerifyPayment)

		// --- User Routes ---
		api.POST("/user/register", h.RegisterUser)
		api.POST("/user/login", h.Login)
		api.GET("/user", h.GetAllUsers)
		api.PUT("/user/profile/update/:userId", h.UpdateProfile)

		// Profile read requires a bearer access token (stateless check).
		api.GET("/user/profile", middleware.AuthMiddleware(h.Tokens), h.GetProfile)

		// --- Auth Flow Routes ---
		api.POST("/auth/refresh-token", h.RefreshAccessToken)
		api.POST("/auth/logout", h.Logout)
		api.POST("/auth/send-otp", h.SendOTP)
		api.POST("/auth/reset-password", h.ResetPassword)
	}

	return router
}
