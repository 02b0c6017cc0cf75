package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sheetex/adapters/api"
	"sheetex/adapters/codec"
	"sheetex/app"
	"sheetex/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	decoder, err := codec.NewDecoder(appConfig.Decode.FallbackEncodings)
	if err != nil {
		log.Fatalf("Failed to initialize decoder: %v", err)
	}
	log.Printf("CSV fallback encodings: %v", appConfig.Decode.FallbackEncodings)

	tool := app.NewExtractorTool(app.NewExtractService(decoder))
	server := api.NewServer(tool, appConfig.Decode.MaxUploadBytes)

	log.Printf("Starting sheetex server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
