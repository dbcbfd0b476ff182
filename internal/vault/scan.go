package vault

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
)

// Record is one key/value entry from a document store dump. Content is kept
// raw so the scan sees the serialized form exactly as stored.
type Record struct {
	Category string          `json:"category"`
	Key      string          `json:"key"`
	Content  json.RawMessage `json:"content"`
}

// Pattern flags serialized content that carries leftover source-code
// fragments where plain text is expected.
type Pattern struct {
	Regex *regexp.Regexp
	Name  string
}

// CorruptionPatterns is scanned in order; the first hit per record wins.
var CorruptionPatterns = []Pattern{
	{regexp.MustCompile(`import\s+type\s*{`), "import type"},
	{regexp.MustCompile(`import\s+{`), "import {"},
	{regexp.MustCompile(`from\s+['"][@./]`), "from module"},
	{regexp.MustCompile(`function\s+\w+\s*\(`), "function declaration"},
	{regexp.MustCompile(`\bconst\s+\w+\s*=`), "const declaration"},
}

// Finding identifies one corrupted record and the pattern that flagged it.
type Finding struct {
	Category string
	Key      string
	Pattern  string
	Preview  string
}

const previewLen = 300

// Load decodes a dump: a JSON array of records.
func Load(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode vault dump: %w", err)
	}
	return records, nil
}

// CategoryCount is a per-category record tally.
type CategoryCount struct {
	Category string
	Count    int
}

// CountCategories tallies records per category, "unknown" for records
// without one. The result is sorted by category name.
func CountCategories(records []Record) []CategoryCount {
	counts := make(map[string]int)
	for _, rec := range records {
		cat := rec.Category
		if cat == "" {
			cat = "unknown"
		}
		counts[cat]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]CategoryCount, 0, len(names))
	for _, name := range names {
		out = append(out, CategoryCount{Category: name, Count: counts[name]})
	}
	return out
}

// Scan checks every record's serialized content against the corruption
// patterns. A record is reported at most once, under the first matching
// pattern.
func Scan(records []Record) []Finding {
	var findings []Finding
	for _, rec := range records {
		content := string(rec.Content)
		for _, pattern := range CorruptionPatterns {
			if pattern.Regex.MatchString(content) {
				preview := content
				if len(preview) > previewLen {
					preview = preview[:previewLen]
				}
				findings = append(findings, Finding{
					Category: rec.Category,
					Key:      rec.Key,
					Pattern:  pattern.Name,
					Preview:  preview,
				})
				break
			}
		}
	}
	return findings
}
