package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/haritha-da/TravelTide-Project/internal/app"
)

func main() {
	// .envファイルがあれば読み込む（なくてもエラーにしない）
	_ = godotenv.Load()

	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
