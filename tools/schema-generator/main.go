// Command schema-generator writes the config JSON schema for editors and CI.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/p4mux/config"
	flag "github.com/spf13/pflag"
)

func main() {
	output := flag.String("o", "schema/p4mux.schema.json", "output file")
	flag.Parse()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	if err := os.WriteFile(*output, append(schemaBytes, '\n'), 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated config schema at %s", *output)
}
