// Package mercadinho implements the product catalog and the sales ledger of
// a small grocery store.
//
// Both are persisted as whitespace-delimited text files (one record per
// line) and rewritten in full after every mutation. The package assumes a
// single process at a time: there is no file locking, and two programs
// writing the same file concurrently will lose updates (last writer wins).
//
// The two entry points live in admin/ (catalog administration and sales
// reports) and caixa/ (point of sale).
package mercadinho
