package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/luxurydeals/catalog-console/internal/api/metrics"
	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
	"github.com/luxurydeals/catalog-console/internal/core/query"
)

// exportFilename is the name of the catalog document at its origin; the
// export download carries the same name so the file can be placed back as-is.
const exportFilename = "real_ebay_deals.json"

// ListingHandler serves the storefront query surface and the admin catalog
// mutations. Mutations touch the in-memory working copy only; the export
// endpoint is the single commit path.
type ListingHandler struct {
	catalog    ports.CatalogService
	categories ports.CategoryStore
}

func NewListingHandler(catalog ports.CatalogService, categories ports.CategoryStore) *ListingHandler {
	return &ListingHandler{catalog: catalog, categories: categories}
}

// --- Request / Response types ---

type listingRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	OriginalPrice float64 `json:"original_price" validate:"gte=0"`
	FinalPrice    float64 `json:"final_price" validate:"gte=0"`
	Category      string  `json:"category" validate:"required"`
	DealType      string  `json:"deal_type"`
	ProductURL    string  `json:"product_url"`
	Brand         string  `json:"brand"`
	Condition     string  `json:"condition"`
	Featured      bool    `json:"featured"`
	ImageURL      string  `json:"image_url"`
}

type listingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
}

type summaryResponse struct {
	Categories []domain.CategorySummary `json:"categories"`
}

// List handles GET /v1/listings.
//
// @Summary      Query the catalog
// @Tags         listings
// @Produce      json
// @Param        search     query     string  false  "Substring matched against title, brand and description"
// @Param        category   query     string  false  "Category filter; empty or 'all' disables it"
// @Param        deal_type  query     string  false  "Deal type filter; empty or 'all' disables it"
// @Param        sort       query     string  false  "Sort key: featured (default), price-low, price-high, discount"
// @Success      200        {object}  listingsResponse
// @Failure      502        {object}  map[string]string
// @Router       /v1/listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.catalog.Load(c.Request().Context())
	if err != nil {
		return err
	}

	q := query.Query{
		SearchTerm: c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		DealType:   c.QueryParam("deal_type"),
		SortKey:    c.QueryParam("sort"),
	}
	if q.SortKey == "" {
		q.SortKey = query.SortFeatured
	}
	metrics.QueriesTotal.WithLabelValues(q.SortKey).Inc()

	result := query.FilterSort(listings, q)
	return c.JSON(http.StatusOK, listingsResponse{Listings: result, Total: len(result)})
}

// Summary handles GET /v1/categories/summary.
//
// @Summary      Aggregate the catalog by category
// @Tags         listings
// @Produce      json
// @Success      200  {object}  summaryResponse
// @Failure      502  {object}  map[string]string
// @Router       /v1/categories/summary [get]
func (h *ListingHandler) Summary(c echo.Context) error {
	listings, err := h.catalog.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summaryResponse{Categories: query.SummarizeByCategory(listings)})
}

// Create handles POST /v1/listings.
//
// @Summary      Add a listing to the working copy
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      listingRequest  true  "Listing fields; discount percentage is derived, never accepted"
// @Success      201   {object}  domain.Listing
// @Failure      400   {object}  map[string]string
// @Router       /v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	return h.save(c, 0, http.StatusCreated)
}

// Update handles PUT /v1/listings/:id.
//
// @Summary      Update a listing in the working copy
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Listing id"
// @Param        body  body      listingRequest  true  "Listing fields"
// @Success      200   {object}  domain.Listing
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/listings/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing id"})
	}
	return h.save(c, id, http.StatusOK)
}

func (h *ListingHandler) save(c echo.Context, id, okStatus int) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	listing, err := h.catalog.SaveListing(ports.SaveListingInput{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		OriginalPrice: req.OriginalPrice,
		FinalPrice:    req.FinalPrice,
		Category:      req.Category,
		DealType:      req.DealType,
		ProductURL:    req.ProductURL,
		Brand:         req.Brand,
		Condition:     req.Condition,
		Featured:      req.Featured,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "listing not found"})
		}
		return err
	}

	if err := h.categories.RefreshCounts(c.Request().Context(), h.catalog.Snapshot()); err != nil {
		return err
	}
	return c.JSON(okStatus, listing)
}

// Delete handles DELETE /v1/listings/:id. Deleting an absent id succeeds.
//
// @Summary      Remove a listing from the working copy
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Listing id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid listing id"})
	}

	h.catalog.DeleteListing(id)
	if err := h.categories.RefreshCounts(c.Request().Context(), h.catalog.Snapshot()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Export handles GET /v1/export, the only persistence path for catalog
// edits: a pretty-printed JSON download named after the origin document.
//
// @Summary      Download the working catalog as JSON
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Listing
// @Router       /v1/export [get]
func (h *ListingHandler) Export(c echo.Context) error {
	data, err := h.catalog.ExportSnapshot()
	if err != nil {
		return err
	}

	metrics.ExportsTotal.Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}
