// =============================================================================
// Sales Analytics System - Shared Types
// =============================================================================
//
// This package contains the record types shared across the pipeline stages to
// avoid import cycles. Types defined here are used by:
//   - salesparser
//   - validation
//   - enrichment
//   - analytics
//   - report / serializer
//
// Each stage has a fixed-shape record type. Field access is always a struct
// field, never a map lookup, so a missing field is a compile-time error.
//
// =============================================================================

package types

import (
	"github.com/shopspring/decimal"
)

// NoMatchValue is the placeholder written for product metadata that could not
// be resolved against the catalog, and for empty CustomerID/Region values in
// the serialized enriched dataset.
const NoMatchValue = "N/A"

// =============================================================================
// TRANSACTION
// =============================================================================

// Transaction is a single parsed sales record from the 8-field feed:
//
//	TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
//
// Records are immutable after parsing. The line amount is always derived via
// Amount(), never stored, so every stage computes it the same way.
type Transaction struct {
	// TransactionID identifies the transaction. Valid IDs start with "T".
	TransactionID string

	// Date is the transaction date in lexicographically sortable form
	// (YYYY-MM-DD). Kept as a string: the feed's date ordering is the
	// string ordering, and no date arithmetic is performed.
	Date string

	// ProductID references the product, e.g. "P101". Valid IDs start
	// with "P" followed by digits.
	ProductID string

	// ProductName is the product name with thousands-separator commas
	// already stripped by the parser.
	ProductName string

	// Quantity is the number of units sold. Valid quantities are > 0.
	Quantity int

	// UnitPrice is the price per unit. Valid prices are > 0.
	UnitPrice decimal.Decimal

	// CustomerID identifies the buyer. Valid IDs start with "C".
	CustomerID string

	// Region is the sales region. Must be non-empty to be valid.
	Region string
}

// Amount returns the line amount (Quantity × UnitPrice).
func (t Transaction) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(t.Quantity)).Mul(t.UnitPrice)
}

// =============================================================================
// CATALOG ENTRY
// =============================================================================

// CatalogEntry is one product record from the remote catalog, normalized:
// absent title/category/brand default to NoMatchValue, absent rating to 0.
type CatalogEntry struct {
	ID       int
	Title    string
	Category string
	Brand    string
	Rating   float64
}

// =============================================================================
// ENRICHED TRANSACTION
// =============================================================================

// EnrichedTransaction is a Transaction augmented with catalog metadata.
// Created once per valid transaction by the enrichment mapper and immutable
// afterwards; consumed by the serializer and the enrichment summary.
type EnrichedTransaction struct {
	Transaction

	// APICategory is the catalog category, or NoMatchValue.
	APICategory string

	// APIBrand is the catalog brand, or NoMatchValue.
	APIBrand string

	// APIRating is the catalog rating, or 0 when unmatched.
	APIRating float64

	// APIMatch reports whether the product resolved against the catalog
	// (directly or via the modulo fallback).
	APIMatch bool
}
