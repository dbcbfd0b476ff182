package main

import (
	"fmt"
	"log"
	"os"

	"TrafficLens/internal/vault"
)

// vault-scan reads a document store dump (a JSON array of records) from stdin
// and reports entries whose serialized content carries leftover source-code
// fragments.
func main() {
	records, err := vault.Load(os.Stdin)
	if err != nil {
		log.Fatalf("Failed to load vault dump: %v", err)
	}

	fmt.Printf("Total entries: %d\n", len(records))

	fmt.Println("\nCategories:")
	for _, c := range vault.CountCategories(records) {
		fmt.Printf("  %s: %d\n", c.Category, c.Count)
	}

	fmt.Println("\n=== Checking for corruption ===")
	findings := vault.Scan(records)
	fmt.Printf("\nCorrupted entries: %d\n", len(findings))
	for _, f := range findings {
		fmt.Printf("\n[%s/%s] - %s:\n", f.Category, f.Key, f.Pattern)
		preview := f.Preview
		if len(preview) > 200 {
			preview = preview[:200]
		}
		fmt.Printf("  %s...\n", preview)
	}
}
