// Package main provides the normalizer command-line tool for flattening a raw dataset.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chefguide/internal/dataset"
	"chefguide/internal/normalizer"
)

func main() {
	inputPath := flag.String("input", "", "Path to raw dataset file (e.g., data/restaurants.json)")
	outputPath := flag.String("output", "", "Path to output JSON file")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Usage: normalizer -input <restaurants.json> -output <directory.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("Error opening file: %v\n", err)
	}

	ds, err := dataset.Decode(f)
	_ = f.Close()

	if err != nil {
		log.Fatalf("Error decoding dataset: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d seasons, %d roster entries)\n", *inputPath, len(ds.Seasons), ds.ChefCount())

	processor := normalizer.NewProcessor()

	if issues := processor.Validator().Issues(ds); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Printf("❌ %v\n", issue)
		}

		log.Fatalf("Validation failed with %d problems\n", len(issues))
	}

	dir, err := processor.Process(ds, *inputPath)
	if err != nil {
		log.Fatalf("Error normalizing: %v\n", err)
	}

	fmt.Printf("📊 Normalized: %d chefs, %d restaurants, %d awarded (version %s)\n",
		dir.Stats.TotalChefs, dir.Stats.TotalRestaurants, dir.Stats.AwardCount, dir.Fingerprint)

	if mkdirErr := os.MkdirAll(filepath.Dir(*outputPath), 0755); mkdirErr != nil {
		log.Fatalf("Error creating directory: %v\n", mkdirErr)
	}

	jsonData, err := json.MarshalIndent(dir, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling JSON: %v\n", err)
	}

	if err := os.WriteFile(*outputPath, jsonData, 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}
