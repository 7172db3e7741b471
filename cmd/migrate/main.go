package main

import (
	"context"
	"fmt"
	"os"

	"restaurant-api/internal/config"
	"restaurant-api/internal/migrate"
	"restaurant-api/pkg/database"
	"restaurant-api/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, "console", "migrate")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.Database.DSN(), cfg.Database.MaxConns, cfg.Database.MaxIdle)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	runner := migrate.NewMigrationRunner(db, cfg.MigrationsDir, log)
	ctx := context.Background()

	switch cmd {
	case "up":
		count, err := runner.Run(ctx)
		if err != nil {
			log.Fatal("migration failed", zap.Int("applied", count), zap.Error(err))
		}
		log.Info("migrations complete", zap.Int("applied", count))
	case "status":
		statuses, err := runner.Status(ctx)
		if err != nil {
			log.Fatal("status failed", zap.Error(err))
		}
		for _, s := range statuses {
			if s.ExecutedAt != nil {
				fmt.Printf("applied  %s  %s\n", s.Filename, s.ExecutedAt.Format("2006-01-02 15:04:05"))
			} else {
				fmt.Printf("pending  %s\n", s.Filename)
			}
		}
	case "rollback":
		last, err := runner.RollbackLast(ctx)
		if err != nil {
			log.Fatal("rollback failed", zap.Error(err))
		}
		if last == "" {
			log.Info("nothing to roll back")
		} else {
			log.Info("rolled back", zap.String("file", last))
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [up|status|rollback]\n", os.Args[0])
		os.Exit(2)
	}
}
