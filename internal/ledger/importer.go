// Package ledger turns exported transaction files into ledger entries and
// merges them into an existing ledger without touching prior entries.
package ledger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/monee/internal/model"
	"github.com/shopspring/decimal"
)

// fieldDelimiter is the only field boundary the export format uses. Fields
// containing the sequence themselves are not supported.
const fieldDelimiter = `","`

// minFields is the number of fields a line needs to be accepted.
const minFields = 5

const (
	dateField        = 0
	amountField      = 1
	descriptionField = 4
)

// Record is a parsed ledger entry that has not been numbered yet.
type Record struct {
	Amount      decimal.Decimal // Signed, as found in the source
	Date        string
	Description string
	Category    string
}

// Result is the outcome of merging records into a ledger.
type Result struct {
	Transactions []model.Transaction
	Added        int
	Skipped      int
}

// SplitFields unwraps one level of surrounding quotes from a trimmed line
// and splits it on the literal quote-comma-quote delimiter.
func SplitFields(line string) []string {
	line = strings.TrimSpace(line)
	if len(line) >= 2 && strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`) {
		line = line[1 : len(line)-1]
	}
	return strings.Split(line, fieldDelimiter)
}

// ParseQuoted parses the quoted-CSV export format. Lines with fewer than
// five fields or a non-numeric amount are skipped and counted, never reported
// as errors.
func ParseQuoted(text string) (records []Record, skipped int) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := SplitFields(line)
		if len(fields) < minFields {
			slog.Debug("Skipping import line with too few fields",
				"line", i+1,
				"fields", len(fields))
			skipped++
			continue
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(fields[amountField]))
		if err != nil {
			slog.Debug("Skipping import line with non-numeric amount",
				"line", i+1,
				"amount", fields[amountField])
			skipped++
			continue
		}

		records = append(records, Record{
			Date:        fields[dateField],
			Amount:      amount,
			Description: fields[descriptionField],
			Category:    model.ImportCategory,
		})
	}

	return records, skipped
}

// Merge numbers records starting at max(existing ids, 0) + 1 and appends them,
// in order, to a copy of existing.
func Merge(existing []model.Transaction, records []Record) Result {
	merged := make([]model.Transaction, len(existing), len(existing)+len(records))
	copy(merged, existing)

	nextID := model.NextTransactionID(existing)
	for _, r := range records {
		category := r.Category
		if category == "" {
			category = model.ImportCategory
		}
		merged = append(merged, model.Transaction{
			ID:          nextID,
			Date:        r.Date,
			Description: r.Description,
			Amount:      r.Amount.Abs(),
			Type:        model.TypeForSignedAmount(r.Amount),
			Category:    category,
		})
		nextID++
	}

	return Result{
		Transactions: merged,
		Added:        len(records),
	}
}

// Import parses text in the quoted-CSV format and merges the result into
// existing. A blank input yields an unchanged copy of existing.
func Import(text string, existing []model.Transaction) Result {
	records, skipped := ParseQuoted(text)
	result := Merge(existing, records)
	result.Skipped = skipped
	return result
}

// ImportReader reads the whole stream before parsing it with Import.
func ImportReader(ctx context.Context, r io.Reader, existing []model.Transaction) (Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read import file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Import(string(content), existing), nil
}
