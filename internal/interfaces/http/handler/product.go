package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appaggregation "github.com/storefront/backend/internal/application/aggregation"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// ProductHandler handles the locally persisted product catalog: manual
// authoring plus read access to synced records.
type ProductHandler struct {
	BaseHandler
	catalog *appaggregation.CatalogService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog *appaggregation.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// Create handles POST /products. Created products are always manual;
// provenance cannot be forged through this path.
func (h *ProductHandler) Create(c *gin.Context) {
	var req appaggregation.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.StoreProductFromDomain(product))
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	query := appaggregation.ListProductsQuery{
		Category: c.Query("category"),
		Source:   c.Query("source"),
		OrderBy:  c.Query("orderBy"),
		OrderDir: c.Query("orderDir"),
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			query.Limit = limit
		}
	}

	products, err := h.catalog.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.StoreProductsFromDomain(products))
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.StoreProductFromDomain(product))
}

// Update handles PUT /products/:id. Source and externalId are immutable.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req appaggregation.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.StoreProductFromDomain(product))
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
