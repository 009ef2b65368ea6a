package ledger

import (
	"strings"
	"testing"
)

// FuzzParseQuoted feeds arbitrary export text through the parser and merge.
func FuzzParseQuoted(f *testing.F) {
	seedCorpus := []string{
		// Well-formed rows
		`"2024-02-01","-42.50","POS","","Coffee Shop"`,
		"\"2024-02-01\",\"-42.50\",\"POS\",\"\",\"Coffee\"\r\n\"2024-02-03\",\"1200\",\"DEP\",\"\",\"Pay\"",
		`"02/01/2024","0","x","y",""`,

		// Rows that are skipped
		`"2024-02-01","abc","POS","","Coffee Shop"`,
		`"2024-02-01","-1"`,
		`only one field`,

		// Edge cases
		"",
		"\n\n  \n",
		`"`,
		`""`,
		`","","","","`,
		`"x","1e3","","",""`,
		`"x","-0.0000001","","","é"`,
	}

	for _, seed := range seedCorpus {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		// The parser should not panic on any input
		records, skipped := ParseQuoted(text)

		nonBlank := 0
		for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
			if strings.TrimSpace(line) != "" {
				nonBlank++
			}
		}
		if len(records)+skipped != nonBlank {
			t.Fatalf("records %d + skipped %d != non-blank lines %d", len(records), skipped, nonBlank)
		}

		for i, r := range records {
			if r.Amount.Abs().IsNegative() {
				t.Fatalf("record %d has negative magnitude %s", i, r.Amount.Abs())
			}
		}

		existing := existingLedger()
		result := Merge(existing, records)
		if result.Added != len(records) {
			t.Fatalf("added %d, want %d", result.Added, len(records))
		}
		if len(result.Transactions) != len(existing)+len(records) {
			t.Fatalf("merged %d transactions, want %d", len(result.Transactions), len(existing)+len(records))
		}
		for i, tx := range result.Transactions {
			if tx.ID != i+1 {
				t.Fatalf("transaction %d has id %d, want %d", i, tx.ID, i+1)
			}
			if tx.Amount.IsNegative() {
				t.Fatalf("transaction %d stored negative amount %s", tx.ID, tx.Amount)
			}
			if !tx.Type.Valid() {
				t.Fatalf("transaction %d has unknown type %q", tx.ID, tx.Type)
			}
		}
	})
}
