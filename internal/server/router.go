package server

import (
	"time"

	"mealmarket-be/internal/cart"
	"mealmarket-be/internal/config"
	"mealmarket-be/internal/favorite"
	"mealmarket-be/internal/message"
	"mealmarket-be/internal/middleware"
	"mealmarket-be/internal/order"
	"mealmarket-be/internal/recipe"
	"mealmarket-be/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs.
type Services struct {
	Users     user.Service
	Recipes   recipe.Service
	Favorites favorite.Service
	Carts     cart.Service
	Orders    order.Service
	Messages  message.Service
}

// NewRouter wires all handlers onto a gin engine.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := NewAuthHandler(svc.Users)
	recipeHandler := NewRecipeHandler(svc.Recipes)
	favoriteHandler := NewFavoriteHandler(svc.Favorites)
	cartHandler := NewCartHandler(svc.Carts)
	orderHandler := NewOrderHandler(svc.Orders)
	messageHandler := NewMessageHandler(svc.Messages)

	secret := cfg.JWTSecret
	requireAuth := middleware.RequireAuth(secret)
	requireCaterer := middleware.RequireRole(string(user.RoleCaterer))

	api := r.Group("/api")
	api.Use(middleware.RateLimit())

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", middleware.RateLimitStrict(), authHandler.Register)
		authRoutes.POST("/login", middleware.RateLimitStrict(), authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/me", requireAuth, authHandler.Me)
		authRoutes.GET("/caterers", authHandler.ListCaterers)
		authRoutes.GET("/caterer/:id", authHandler.GetCaterer)
		authRoutes.GET("/user/:id", authHandler.GetUser)
	}

	recipeRoutes := api.Group("/recipes")
	{
		recipeRoutes.GET("", recipeHandler.List)
		recipeRoutes.GET("/mine", requireAuth, requireCaterer, recipeHandler.ListMine)
		recipeRoutes.GET("/category/:name", recipeHandler.ListByCategory)
		recipeRoutes.GET("/caterer/:id", recipeHandler.ListByCaterer)
		recipeRoutes.GET("/:id", recipeHandler.Get)
		recipeRoutes.POST("", requireAuth, requireCaterer, recipeHandler.Create)
		recipeRoutes.PUT("/:id", requireAuth, requireCaterer, recipeHandler.Update)
		recipeRoutes.DELETE("/:id", requireAuth, requireCaterer, recipeHandler.Delete)
	}

	favoriteRoutes := api.Group("/favorites", requireAuth)
	{
		favoriteRoutes.GET("", favoriteHandler.List)
		favoriteRoutes.POST("/:id", favoriteHandler.Add)
		favoriteRoutes.DELETE("/:id", favoriteHandler.Remove)
	}

	// Cart routes work for both anonymous sessions and logged-in users.
	cartRoutes := api.Group("/cart", middleware.OptionalAuth(secret))
	{
		cartRoutes.POST("/get", cartHandler.Get)
		cartRoutes.POST("/add", cartHandler.Add)
		cartRoutes.POST("/update", cartHandler.Update)
		cartRoutes.POST("/clear", cartHandler.Clear)
	}

	orderRoutes := api.Group("/orders")
	{
		orderRoutes.POST("/place", requireAuth, orderHandler.Place)
		orderRoutes.GET("/user", requireAuth, orderHandler.ListForUser)
		orderRoutes.GET("/caterer", requireAuth, requireCaterer, orderHandler.ListForCaterer)
		orderRoutes.POST("/accept", requireAuth, requireCaterer, orderHandler.Accept)
		orderRoutes.POST("/reject", requireAuth, requireCaterer, orderHandler.Reject)
		orderRoutes.POST("/status", requireAuth, requireCaterer, orderHandler.SetStatus)
	}

	// Inbox and mark-read are recipient-gated in the service, not
	// role-gated: buyers receive caterer replies there too.
	messageRoutes := api.Group("/messages")
	{
		messageRoutes.POST("", middleware.OptionalAuth(secret), messageHandler.Send)
		messageRoutes.GET("", requireAuth, messageHandler.Inbox)
		messageRoutes.PUT("/:id/read", requireAuth, messageHandler.MarkRead)
		messageRoutes.POST("/:id/reply", requireAuth, requireCaterer, messageHandler.Reply)
	}

	return r
}
