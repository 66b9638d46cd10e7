package models

import (
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/aggregation"
)

// StoreProductModel is the persistence model for the StoreProduct domain
// entity. ExternalID is nullable so the partial unique index only covers
// imported rows; authored rows store NULL, never an empty string.
type StoreProductModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(300);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Image       string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(100);index"`
	Rating      float64         `gorm:"not null;default:0"`
	Quantity    int             `gorm:"not null;default:0"`
	Brand       string          `gorm:"type:varchar(100)"`
	Discount    float64         `gorm:"not null;default:0"`
	Source      string          `gorm:"type:varchar(20);not null;index"`
	ExternalID  *string         `gorm:"type:varchar(120);uniqueIndex:idx_store_products_external_id,where:external_id IS NOT NULL"`
}

// TableName returns the table name for GORM
func (StoreProductModel) TableName() string {
	return "store_products"
}

// ToDomain converts the persistence model to a domain StoreProduct entity.
func (m *StoreProductModel) ToDomain() *aggregation.StoreProduct {
	externalID := ""
	if m.ExternalID != nil {
		externalID = *m.ExternalID
	}
	return &aggregation.StoreProduct{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Category:    m.Category,
		Rating:      m.Rating,
		Quantity:    m.Quantity,
		Brand:       m.Brand,
		Discount:    m.Discount,
		Source:      aggregation.Source(m.Source),
		ExternalID:  externalID,
	}
}

// FromDomain populates the persistence model from a domain StoreProduct entity.
func (m *StoreProductModel) FromDomain(p *aggregation.StoreProduct) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.Image = p.Image
	m.Category = p.Category
	m.Rating = p.Rating
	m.Quantity = p.Quantity
	m.Brand = p.Brand
	m.Discount = p.Discount
	m.Source = p.Source.String()
	m.ExternalID = nil
	if p.ExternalID != "" {
		externalID := p.ExternalID
		m.ExternalID = &externalID
	}
}

// StoreProductModelFromDomain creates a new persistence model from a domain entity.
func StoreProductModelFromDomain(p *aggregation.StoreProduct) *StoreProductModel {
	m := &StoreProductModel{}
	m.FromDomain(p)
	return m
}
