// Package main provides the signer command-line tool for signing and verifying markdown exports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"chefguide/internal/config"
	"chefguide/internal/dataset"
	"chefguide/internal/logger"
	"chefguide/pkg/metadata"
)

func main() {
	inputPath := flag.String("input", "", "Path to markdown export (e.g., export/chefs.md)")
	configPath := flag.String("config", "", "Path to YAML configuration file")
	verify := flag.Bool("verify", false, "Only verify the existing signature")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: signer -input <path> [-verify] [-config <path>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	contentBytes, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Error reading file: %v\n", err)
	}

	content := string(contentBytes)
	fmt.Printf("📂 Reading: %s (%d bytes)\n", *inputPath, len(content))

	if *verify {
		if ok, verifyErr := metadata.Verify(content); !ok {
			log.Fatalf("❌ Verification failed: %v\n", verifyErr)
		}

		meta, _ := metadata.Extract(content)
		fmt.Printf("✅ Signature valid (version %s, validation %t)\n", meta.Version, meta.Validation)

		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("⚠️  Warning: Could not load config: %v. Using defaults.\n", err)
		cfg = config.Default()
	}

	// The export is signed against the dataset version it was produced from.
	fmt.Printf("🔍 Loading dataset: %s\n", cfg.DatasetSource())

	store := dataset.NewStore(cfg.Dataset, logger.NewLogger(cfg.Logging.Level))

	dir, err := store.Reload(context.Background())
	valid := err == nil
	version := ""

	if valid {
		version = dir.Fingerprint
		fmt.Printf("✅ Dataset valid (version %s)\n", version)
	} else {
		fmt.Printf("⚠️  Dataset invalid: %v. Signing as unvalidated.\n", err)
	}

	fmt.Println("✍️  Signing file...")

	signed := metadata.Sign(content, valid, version)

	if err := os.WriteFile(*inputPath, []byte(signed), 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Signed and saved to: %s\n", *inputPath)
}
