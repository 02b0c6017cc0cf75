// Command cli runs one extraction from the command line: decode the given
// file with the given field mapping and print the tool messages to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"sheetex/adapters/codec"
	"sheetex/app"
	"sheetex/domain/tabular"
	"sheetex/internal/config"
)

func main() {
	filePath := flag.String("file", "", "path to the .csv, .xlsx or .xls file")
	fields := flag.String("fields", "", `field mapping JSON, e.g. '{"id":"ID","name":"Name"}'`)
	flag.Parse()

	if *filePath == "" || *fields == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	decoder, err := codec.NewDecoder(appConfig.Decode.FallbackEncodings)
	if err != nil {
		log.Fatalf("Failed to initialize decoder: %v", err)
	}

	content, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *filePath, err)
	}

	tool := app.NewExtractorTool(app.NewExtractService(decoder))
	messages := tool.Invoke(context.Background(), app.ToolParameters{
		TableFields: *fields,
		File: tabular.RawFile{
			Extension: filepath.Ext(*filePath),
			Content:   content,
		},
	})

	for _, msg := range messages {
		if msg.Type == app.MessageText {
			fmt.Println(msg.Text)
		}
	}
}
