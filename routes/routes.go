// routes.go - Builds the gin engine and the /api route table

package routes

import (
	"time"

	"go-shop-backend/handlers"
	"go-shop-backend/middleware"
	"go-shop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options controls the cross-cutting behaviour of the router
type Options struct {
	CORSOrigins  []string
	AuthRequired bool
	Tokens       middleware.TokenValidator
	Log          *zap.Logger
}

// SetupRouter registers every endpoint on a new engine
func SetupRouter(h *handlers.Handler, opts Options) *gin.Engine {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(opts.Log), gin.Recovery())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/health", handlers.Health)

	// Registration and login stay public; other writes need a token when
	// AuthRequired is set
	auth := middleware.RequireAuth(opts.Tokens, opts.AuthRequired)
	adminOnly := middleware.RequireRole(utils.RoleAdmin, opts.AuthRequired)

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		admin.GET("", h.ListAdmins)
		admin.GET("/:id", h.GetAdmin)
		admin.POST("", auth, adminOnly, h.CreateAdmin)
		admin.POST("/login", h.LoginAdmin)
		admin.PATCH("/:id", auth, adminOnly, h.UpdateAdmin)
		admin.DELETE("/:id", auth, adminOnly, h.DeleteAdmin)

		sellers := h.SellerHandlers()
		seller := api.Group("/seller")
		seller.GET("", sellers.List)
		seller.GET("/:id", sellers.Get)
		seller.GET("/:id/products", h.ListSellerProducts)
		seller.POST("", sellers.Register)
		seller.POST("/login", sellers.Login)
		seller.PATCH("/:id", auth, sellers.Update)
		seller.DELETE("/:id", auth, sellers.Delete)

		customers := h.CustomerHandlers()
		customer := api.Group("/customer")
		customer.GET("", customers.List)
		customer.GET("/:id", customers.Get)
		customer.POST("", customers.Register)
		customer.POST("/login", customers.Login)
		customer.PATCH("/:id", auth, customers.Update)
		customer.DELETE("/:id", auth, customers.Delete)

		product := api.Group("/product")
		product.GET("", h.ListProducts)
		product.GET("/:id", h.GetProduct)
		product.GET("/seller/:id", h.ListSellerProducts)
		product.POST("", auth, h.CreateProduct)
		product.PATCH("/:id", auth, h.UpdateProduct)
		product.DELETE("/:id", auth, h.DeleteProduct)
	}

	return r
}

// corsConfig allows the given origins; "*" allows any origin without
// credentials
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
