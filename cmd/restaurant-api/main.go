package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-api/internal/config"
	httpapi "restaurant-api/internal/http"
	"restaurant-api/internal/repository"
	"restaurant-api/internal/service"
	"restaurant-api/pkg/database"
	"restaurant-api/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "restaurant-api")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.Database.DSN(), cfg.Database.MaxConns, cfg.Database.MaxIdle)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	restaurants := repository.NewPostgresRestaurantsRepo(db)
	food := repository.NewPostgresFoodRepo(db)
	categories := repository.NewPostgresCategoriesRepo(db)
	orders := repository.NewPostgresOrdersRepo(db)

	mealdb := service.NewMealDBClient(cfg.MealDB.BaseURL, time.Duration(cfg.MealDB.TimeoutSeconds)*time.Second, log)

	handlers := httpapi.Handlers{
		Health:      httpapi.NewHealthHandler(db, log, cfg.IsProduction()),
		Restaurants: httpapi.NewRestaurantHandler(restaurants, food, log, cfg.IsProduction()),
		Food:        httpapi.NewFoodHandler(food, log, cfg.IsProduction()),
		Categories:  httpapi.NewCategoryHandler(categories, food, log, cfg.IsProduction()),
		Orders:      httpapi.NewOrderHandler(orders, log, cfg.IsProduction()),
		External:    httpapi.NewExternalHandler(mealdb, log, cfg.IsProduction()),
		Reports:     httpapi.NewReportHandler(orders, log, cfg.IsProduction()),
	}

	router := httpapi.NewRouter(cfg, log, handlers)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.HTTP.Addr))
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown incomplete", zap.Error(err))
	}
	database.Close(db)
}
