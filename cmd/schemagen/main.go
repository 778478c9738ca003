package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/booltable/internal/suite"
	"github.com/DjordjeVuckovic/booltable/pkg/schema"
)

const schemaBaseID = "https://schemas.booltable.dev/v1"

func main() {
	outputDir := flag.String("output", "api", "Output directory for generated schemas")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	generator := schema.NewGenerator(schema.WithTagKey("yaml"), schema.WithBaseID(schemaBaseID))

	schemaJSON, err := generator.GenerateJSONSchema(suite.Suite{})
	if err != nil {
		log.Fatalf("Failed to generate schema for Suite: %v", err)
	}

	jsonFile := filepath.Join(*outputDir, "suite-v1.json")
	if err := os.WriteFile(jsonFile, schemaJSON, 0o644); err != nil {
		log.Fatalf("Failed to write JSON schema: %v", err)
	}
	fmt.Printf("Generated JSON schema: %s\n", jsonFile)

	yamlFile := filepath.Join(*outputDir, "suite-example.yaml")
	if err := os.WriteFile(yamlFile, []byte(yamlExample), 0o644); err != nil {
		log.Fatalf("Failed to write YAML example: %v", err)
	}
	fmt.Printf("Generated YAML example: %s\n", yamlFile)
}

const yamlExample = `# yaml-language-server: $schema=suite-v1.json
name: example
description: Expected truth tables for a few equations
repeat: 3
cases:
  - id: and
    equation: "A AND B = Z"
    outputs: "0001"
  - id: right-assoc
    equation: "A AND B OR C = Z"
    outputs: "00000111"
  - id: excluded-middle
    equation: "A OR NOT A = Z"
    classification: tautology
  - id: missing-operand
    equation: "A AND = Z"
    error: true
`
