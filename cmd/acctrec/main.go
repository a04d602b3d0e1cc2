package main

import (
	"fmt"
	"os"

	"account-recommendation/internal/commands"
)

// @title Account Recommendation Stub API
// @version 1.0
// @description Заглушка сервиса рекомендаций стандартных счетов
// @host localhost:5001
// @BasePath /
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
