package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/pitwall-app/pitwall/app/telemetry"
)

func main() {
	// generate schema for the telemetry endpoints config
	schema, err := telemetry.GenerateSchema()
	if err != nil {
		log.Fatalf("failed to generate schema: %v", err)
	}

	// set schema metadata
	schema.Title = "Pitwall Telemetry Endpoints Schema"
	schema.Description = "Schema for the pitwall telemetry endpoints file"

	// marshal to JSON with indentation
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	// write to file
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}
