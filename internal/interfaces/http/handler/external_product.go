package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appaggregation "github.com/storefront/backend/internal/application/aggregation"
	"github.com/storefront/backend/internal/domain/aggregation"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

const (
	defaultFetchLimit  = 30
	defaultSearchLimit = 20
	maxFetchLimit      = 100
)

// ExternalProductHandler exposes the external catalog endpoints: live
// aggregator fetches, category listings, upstream search, the combined
// local+external view, and the admin-only sync and clear operations.
type ExternalProductHandler struct {
	BaseHandler
	aggregator *appaggregation.AggregatorService
	syncer     *appaggregation.SyncService
	combined   *appaggregation.CombinedService
	catalog    *appaggregation.CatalogService
}

// NewExternalProductHandler creates a new ExternalProductHandler
func NewExternalProductHandler(
	aggregator *appaggregation.AggregatorService,
	syncer *appaggregation.SyncService,
	combined *appaggregation.CombinedService,
	catalog *appaggregation.CatalogService,
) *ExternalProductHandler {
	return &ExternalProductHandler{
		aggregator: aggregator,
		syncer:     syncer,
		combined:   combined,
		catalog:    catalog,
	}
}

// parseLimit reads a limit query parameter, clamping to sane bounds
func parseLimit(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > maxFetchLimit {
		return maxFetchLimit
	}
	return limit
}

// Fetch handles GET /external-products. It fetches live records from one
// upstream catalog, or from all of them concurrently, without persisting.
func (h *ExternalProductHandler) Fetch(c *gin.Context) {
	sourceParam := c.DefaultQuery("source", aggregation.SourceAll)
	category := c.Query("category")
	limit := parseLimit(c, defaultFetchLimit)

	var records []aggregation.ProductRecord
	switch {
	case sourceParam == aggregation.SourceAll:
		records = h.aggregator.FetchFromAll(c.Request.Context(), category, limit)
	default:
		source, ok := aggregation.ParseSource(sourceParam)
		if !ok || !source.IsExternal() {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeUnknownSource,
				fmt.Sprintf("Unknown catalog source: %s", sourceParam))
			return
		}
		records = h.aggregator.FetchFromSource(c.Request.Context(), source, category, limit)
	}

	c.JSON(http.StatusOK, dto.ExternalProductsResponse{
		Success:  true,
		Count:    len(records),
		Source:   sourceParam,
		Products: dto.ExternalProductsFromRecords(records),
	})
}

// FetchCategories handles GET /external-products/categories. With no source
// it merges and deduplicates the category lists of every upstream catalog.
func (h *ExternalProductHandler) FetchCategories(c *gin.Context) {
	sourceParam := c.DefaultQuery("source", aggregation.SourceAll)

	if sourceParam != aggregation.SourceAll {
		source, ok := aggregation.ParseSource(sourceParam)
		if !ok || !source.IsExternal() {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeUnknownSource,
				fmt.Sprintf("Unknown catalog source: %s", sourceParam))
			return
		}
	}

	categories := h.aggregator.FetchCategories(c.Request.Context(), sourceParam)

	c.JSON(http.StatusOK, dto.ExternalCategoriesResponse{
		Success:    true,
		Count:      len(categories),
		Categories: categories,
	})
}

// Search handles GET /external-products/search. The query is delegated to
// the one upstream catalog with a native search endpoint.
func (h *ExternalProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		h.BadRequest(c, "Query parameter 'q' is required")
		return
	}
	limit := parseLimit(c, defaultSearchLimit)

	records := h.aggregator.Search(c.Request.Context(), query, limit)

	c.JSON(http.StatusOK, dto.ExternalSearchResponse{
		Success:  true,
		Count:    len(records),
		Query:    query,
		Products: dto.ExternalProductsFromRecords(records),
	})
}

// Combined handles GET /external-products/combined. Locally persisted
// products come first; live external records that are already synced are
// filtered out by externalId.
func (h *ExternalProductHandler) Combined(c *gin.Context) {
	category := c.Query("category")
	source := c.Query("source")
	includeExternal := c.DefaultQuery("includeExternal", "true") != "false"
	limit := parseLimit(c, 0)

	result, err := h.combined.Combined(c.Request.Context(), category, source, includeExternal, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CombinedProductsResponse{
		Success:  true,
		Count:    len(result.Products),
		DBCount:  result.LocalCount,
		Products: dto.ExternalProductsFromRecords(result.Products),
	})
}

// Sync handles POST /external-products/sync. Admin only; imports upstream
// records into the local store, skipping anything already present.
func (h *ExternalProductHandler) Sync(c *gin.Context) {
	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Field 'source' is required")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultFetchLimit
	}

	result, err := h.syncer.Sync(c.Request.Context(), req.Source, req.Category, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SyncResponse{
		Success:  true,
		Message:  fmt.Sprintf("Synced %d product(s) from %s", len(result.Synced), result.Source),
		Synced:   len(result.Synced),
		Skipped:  len(result.Skipped),
		Products: dto.StoreProductsFromDomain(result.Synced),
	})
}

// Clear handles DELETE /external-products/clear/:source. Admin only; bulk
// removes every product imported from the given source.
func (h *ExternalProductHandler) Clear(c *gin.Context) {
	sourceParam := c.Param("source")

	deleted, err := h.catalog.ClearBySource(c.Request.Context(), sourceParam)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClearResponse{
		Success:      true,
		Message:      fmt.Sprintf("Removed %d product(s) imported from %s", deleted, sourceParam),
		DeletedCount: deleted,
	})
}
