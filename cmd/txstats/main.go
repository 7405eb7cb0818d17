// Command txstats reads a transactions CSV and prints revenue totals.
package main

import (
	"fmt"
	"os"

	"github.com/kbukum/pipekit/txstats"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: txstats <transactions.csv>")
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "txstats: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	records, err := txstats.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("transactions: %d\n", len(records))
	fmt.Printf("total revenue: %s\n", txstats.TotalRevenue(records).StringFixed(2))

	for category, total := range txstats.RevenueByCategory(records) {
		fmt.Printf("  %s: %s\n", category, total.StringFixed(2))
	}
	return nil
}
