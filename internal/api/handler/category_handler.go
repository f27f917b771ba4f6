package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

// CategoryHandler serves the admin category records.
type CategoryHandler struct {
	categories ports.CategoryStore
}

func NewCategoryHandler(categories ports.CategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type categoriesResponse struct {
	Categories []domain.CategoryRecord `json:"categories"`
}

// List handles GET /v1/admin/categories.
//
// @Summary      List category records
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoriesResponse
// @Router       /v1/admin/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	records, err := h.categories.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{Categories: records})
}

// Create handles POST /v1/admin/categories.
//
// @Summary      Create a category record
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category fields"
// @Success      201   {object}  domain.CategoryRecord
// @Failure      400   {object}  map[string]string
// @Router       /v1/admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	record, err := h.categories.Create(c.Request().Context(), ports.SaveCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// Update handles PUT /v1/admin/categories/:id.
//
// @Summary      Update a category record
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "Category fields"
// @Success      200   {object}  domain.CategoryRecord
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category id"})
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	record, err := h.categories.Update(c.Request().Context(), id, ports.SaveCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "category not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /v1/admin/categories/:id. A category still holding
// products cannot be removed; an absent id deletes as a no-op.
//
// @Summary      Delete a category record
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Category id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid category id"})
	}

	if err := h.categories.Remove(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrCategoryInUse) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
