package main

import (
	"mealmarket-be/internal/cart"
	"mealmarket-be/internal/config"
	"mealmarket-be/internal/db"
	"mealmarket-be/internal/favorite"
	"mealmarket-be/internal/logger"
	"mealmarket-be/internal/message"
	"mealmarket-be/internal/order"
	"mealmarket-be/internal/recipe"
	"mealmarket-be/internal/server"
	"mealmarket-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	redisClient := db.InitRedis(cfg)
	defer redisClient.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, cfg.JWTSecret)

	recipeRepo := recipe.NewRepository(database)
	recipeSvc := recipe.NewService(recipeRepo)

	favoriteRepo := favorite.NewRepository(database)
	favoriteSvc := favorite.NewService(favoriteRepo)

	cartSvc := cart.NewService(cart.NewMemoryStore(), cart.NewRedisStore(redisClient))

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, recipeRepo)

	messageRepo := message.NewRepository(database)
	messageSvc := message.NewService(messageRepo, userRepo)

	router := server.NewRouter(cfg, server.Services{
		Users:     userSvc,
		Recipes:   recipeSvc,
		Favorites: favoriteSvc,
		Carts:     cartSvc,
		Orders:    orderSvc,
		Messages:  messageSvc,
	})

	logger.L().Info("🚀 server running", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
