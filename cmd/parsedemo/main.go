package main

// Parse a resume file locally and print the extracted record as JSON:
//   go run ./cmd/parsedemo path/to/resume.pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"nextskill-backend/internal/bootstrap"
	"nextskill-backend/internal/extract"
	"nextskill-backend/internal/shared/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <resume file>\n", os.Args[0])
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := config.Load()
	engine, err := bootstrap.BuildEngine(cfg)
	if err != nil {
		log.Fatalf("build engine: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read file: %v", err)
	}

	text, err := extract.TextFromBytes(context.Background(), data, "", path)
	if err != nil {
		log.Fatalf("extract text: %v", err)
	}

	parsed, err := engine.Parse(text)
	if err != nil {
		log.Fatalf("parse: %v", err)
	}

	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(out))
}
