package txstats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// requiredColumns are the header columns every transactions file must have.
var requiredColumns = []string{
	"transaction_id",
	"timestamp",
	"user_id",
	"category",
	"item",
	"quantity",
	"unit_price",
}

// Load reads a headered transactions CSV into memory. It fails on a missing
// file, a missing or incomplete header, and any unparseable row; row errors
// carry the 1-based line number of the offending row.
func Load(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("transactions file %s has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("transactions file %s is missing required columns: %v", path, missing)
	}

	var records []Transaction
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d of %s: %w", line, path, err)
		}

		record, err := parseRow(row, colIndex)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", line, path, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, colIndex map[string]int) (Transaction, error) {
	field := func(name string) string { return row[colIndex[name]] }

	category, err := ParseCategory(field("category"))
	if err != nil {
		return Transaction{}, err
	}

	timestamp, err := time.Parse(time.RFC3339, field("timestamp"))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid timestamp %q: %w", field("timestamp"), err)
	}

	quantity, err := strconv.Atoi(field("quantity"))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid quantity %q: %w", field("quantity"), err)
	}

	unitPrice, err := decimal.NewFromString(field("unit_price"))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid unit_price %q: %w", field("unit_price"), err)
	}

	return Transaction{
		TransactionID: field("transaction_id"),
		Timestamp:     timestamp,
		UserID:        field("user_id"),
		Category:      category,
		Item:          field("item"),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
	}, nil
}
