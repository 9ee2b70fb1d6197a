package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pocketledger/internal/config"
	"pocketledger/internal/repositories/migrations"
	"pocketledger/pkg/utils"
)

const usage = "usage: setup up|down"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("no .env file found, using process environment")
	}
	utils.InitLogger(os.Getenv("LOG_LEVEL"), os.Getenv("APP_ENV"))

	dsn, err := config.DatabaseURL()
	if err != nil {
		utils.Logger.Fatal("invalid database configuration: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "up":
		err = migrations.Up(ctx, dsn)
	case "down":
		err = migrations.Down(ctx, dsn)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		utils.Logger.Fatal("schema ", os.Args[1], " failed: ", err)
	}
}
