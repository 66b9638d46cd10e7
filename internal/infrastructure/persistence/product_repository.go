package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
)

// defaultProductPageSize bounds unqualified listings
const defaultProductPageSize = 100

// GormProductStore implements aggregation.ProductStore using GORM.
// Uniqueness of external IDs is enforced by a partial unique index on
// store_products.external_id, so concurrent imports of the same record
// resolve at the database rather than in application code.
type GormProductStore struct {
	db *gorm.DB
}

// NewGormProductStore creates a new GormProductStore
func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

// ExistsByExternalID reports whether an imported record is already persisted
func (r *GormProductStore) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	if externalID == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.StoreProductModel{}).
		Where("external_id = ?", externalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert persists a new record. An external ID conflict leaves the existing
// row untouched and reports shared.ErrDuplicateExternal.
func (r *GormProductStore) Insert(ctx context.Context, product *aggregation.StoreProduct) error {
	model := models.StoreProductModelFromDomain(product)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			// Conflict target must carry the partial index predicate so the
			// planner can match idx_store_products_external_id
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "external_id IS NOT NULL"},
			}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrDuplicateExternal
	}
	return nil
}

// FindAll lists persisted records matching the query
func (r *GormProductStore) FindAll(ctx context.Context, query aggregation.ProductQuery) ([]aggregation.StoreProduct, error) {
	db := r.db.WithContext(ctx).Model(&models.StoreProductModel{})
	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}
	if query.Source != "" {
		db = db.Where("source = ?", query.Source.String())
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultProductPageSize
	}

	orderBy := ValidateSortField(query.OrderBy, StoreProductSortFields, "created_at")
	orderDir := ValidateSortOrder(query.OrderDir)

	var rows []models.StoreProductModel
	if err := db.Order(orderBy + " " + orderDir).Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]aggregation.StoreProduct, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

// FindByID fetches one persisted record
func (r *GormProductStore) FindByID(ctx context.Context, id uuid.UUID) (*aggregation.StoreProduct, error) {
	var row models.StoreProductModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Save updates an existing record
func (r *GormProductStore) Save(ctx context.Context, product *aggregation.StoreProduct) error {
	model := models.StoreProductModelFromDomain(product)
	result := r.db.WithContext(ctx).
		Model(&models.StoreProductModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes one persisted record
func (r *GormProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StoreProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBySource bulk-removes every record imported from one source
func (r *GormProductStore) DeleteBySource(ctx context.Context, source aggregation.Source) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("source = ?", source.String()).
		Delete(&models.StoreProductModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Ensure GormProductStore implements the port
var _ aggregation.ProductStore = (*GormProductStore)(nil)
