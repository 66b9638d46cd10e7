package aggregation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrRecordNameRequired indicates a canonical record without a name
	ErrRecordNameRequired = errors.New("aggregation: record name is required")
	// ErrRecordInvalidRating indicates a rating outside [0,5]
	ErrRecordInvalidRating = errors.New("aggregation: rating must be between 0 and 5")
	// ErrRecordInvalidDiscount indicates a discount outside [0,100]
	ErrRecordInvalidDiscount = errors.New("aggregation: discount must be between 0 and 100")
	// ErrRecordNegativeStock indicates a negative stock figure
	ErrRecordNegativeStock = errors.New("aggregation: stock cannot be negative")
	// ErrRecordInvalidSource indicates an unrecognized provenance tag
	ErrRecordInvalidSource = errors.New("aggregation: invalid record source")
	// ErrManualWithExternalID indicates a manual record carrying an external ID
	ErrManualWithExternalID = errors.New("aggregation: manual records cannot carry an external ID")
)

// DefaultStock is the deterministic placeholder used when an upstream
// catalog does not publish stock figures.
const DefaultStock = 50

// ProductRecord is the canonical product shape produced by source adapters
// and consumed by the sync engine and combined view. Category always holds
// a post-normalization label; raw upstream labels never leave the adapters.
type ProductRecord struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Rating      float64
	Stock       int
	Brand       string
	Discount    float64
	Source      Source
	// ExternalID is the cross-source identity "<source>_<nativeId>".
	// Empty for manually authored records.
	ExternalID string
}

// MakeExternalID builds the canonical cross-source identity string
func MakeExternalID(source Source, nativeID string) string {
	return fmt.Sprintf("%s_%s", source, nativeID)
}

// HasExternalID returns true when the record carries a cross-source identity
func (r *ProductRecord) HasExternalID() bool {
	return r.ExternalID != ""
}

// Validate checks the canonical record invariants
func (r *ProductRecord) Validate() error {
	if r.Name == "" {
		return ErrRecordNameRequired
	}
	if !r.Source.IsValid() {
		return ErrRecordInvalidSource
	}
	if r.Source == SourceManual && r.ExternalID != "" {
		return ErrManualWithExternalID
	}
	if r.Rating < 0 || r.Rating > 5 {
		return ErrRecordInvalidRating
	}
	if r.Discount < 0 || r.Discount > 100 {
		return ErrRecordInvalidDiscount
	}
	if r.Stock < 0 {
		return ErrRecordNegativeStock
	}
	return nil
}
