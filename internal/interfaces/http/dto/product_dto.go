package dto

import (
	"time"

	"github.com/storefront/backend/internal/domain/aggregation"
)

// ExternalProductDTO is the wire shape of a canonical catalog record as
// fetched from an upstream source. It carries no store identity because
// nothing has been persisted.
type ExternalProductDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
	Brand       string  `json:"brand,omitempty"`
	Discount    float64 `json:"discount"`
	Source      string  `json:"source"`
	// ExternalID renders as null for manually authored records
	ExternalID *string `json:"externalId"`
}

// ExternalProductFromRecord maps a canonical record to its wire shape
func ExternalProductFromRecord(record aggregation.ProductRecord) ExternalProductDTO {
	dto := ExternalProductDTO{
		Name:        record.Name,
		Description: record.Description,
		Price:       record.Price.InexactFloat64(),
		Image:       record.Image,
		Category:    record.Category,
		Rating:      record.Rating,
		Stock:       record.Stock,
		Brand:       record.Brand,
		Discount:    record.Discount,
		Source:      record.Source.String(),
	}
	if record.ExternalID != "" {
		externalID := record.ExternalID
		dto.ExternalID = &externalID
	}
	return dto
}

// ExternalProductsFromRecords maps a slice of canonical records
func ExternalProductsFromRecords(records []aggregation.ProductRecord) []ExternalProductDTO {
	dtos := make([]ExternalProductDTO, len(records))
	for i, record := range records {
		dtos[i] = ExternalProductFromRecord(record)
	}
	return dtos
}

// StoreProductDTO is the wire shape of a persisted product
type StoreProductDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Quantity    int       `json:"quantity"`
	Brand       string    `json:"brand,omitempty"`
	Discount    float64   `json:"discount"`
	Source      string    `json:"source"`
	ExternalID  *string   `json:"externalId"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StoreProductFromDomain maps a persisted product to its wire shape
func StoreProductFromDomain(product *aggregation.StoreProduct) StoreProductDTO {
	dto := StoreProductDTO{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.InexactFloat64(),
		Image:       product.Image,
		Category:    product.Category,
		Rating:      product.Rating,
		Quantity:    product.Quantity,
		Brand:       product.Brand,
		Discount:    product.Discount,
		Source:      product.Source.String(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.ExternalID != "" {
		externalID := product.ExternalID
		dto.ExternalID = &externalID
	}
	return dto
}

// StoreProductsFromDomain maps a slice of persisted products
func StoreProductsFromDomain(products []aggregation.StoreProduct) []StoreProductDTO {
	dtos := make([]StoreProductDTO, len(products))
	for i := range products {
		dtos[i] = StoreProductFromDomain(&products[i])
	}
	return dtos
}
