package main

import (
	"context"
	"flag"
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
	force := flag.Bool("force", false, "clear seed tracking and reapply every seed file")
	flag.Parse()

	cmd := "up"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, "console", "seed")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg.Database.DSN(), cfg.Database.MaxConns, cfg.Database.MaxIdle)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	runner := migrate.NewSeedRunner(db, cfg.SeedsDir, log)
	ctx := context.Background()

	switch cmd {
	case "up":
		var count int
		if *force {
			count, err = runner.RunForce(ctx)
		} else {
			count, err = runner.Run(ctx)
		}
		if err != nil {
			log.Fatal("seeding failed", zap.Int("applied", count), zap.Error(err))
		}
		log.Info("seeding complete", zap.Int("applied", count))
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
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [-force] [up|status]\n", os.Args[0])
		os.Exit(2)
	}
}
