package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"finviz-scanner/pkg/screener"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found, using environment variables")
	}

	logger := zap.Must(zap.NewProduction()).With(
		zap.String("run_id", uuid.NewString()),
	)
	defer logger.Sync()

	// Unset means the real finviz endpoint.
	scanner := screener.NewScanner(os.Getenv("SCREENER_BASE_URL"), logger)

	preset := screener.Daily3Up()
	url := scanner.PresetURL(preset)

	result := scanner.Fetch(url)

	fmt.Print(screener.FormatReport(result.Stocks, url, preset))
}
