// Package txstats loads a transactions CSV and computes revenue aggregates.
//
// It is a standalone utility that shares the repository with the pipeline
// core but consumes no part of it: plain sequential parsing, grouping, and
// summing over in-memory records. Monetary amounts use shopspring/decimal
// so sums are exact.
package txstats
