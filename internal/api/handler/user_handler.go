package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/luxurydeals/catalog-console/internal/core/domain"
	"github.com/luxurydeals/catalog-console/internal/core/ports"
)

// UserHandler serves the admin account console. Responses never carry
// secrets; every account is sanitized before rendering.
type UserHandler struct {
	identity ports.IdentityStore
}

func NewUserHandler(identity ports.IdentityStore) *UserHandler {
	return &UserHandler{identity: identity}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=admin editor viewer"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor viewer"`
}

type usersResponse struct {
	Users []domain.Account `json:"users"`
}

// List handles GET /v1/admin/users.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	accounts, err := h.identity.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	sanitized := make([]domain.Account, len(accounts))
	for i, a := range accounts {
		sanitized[i] = a.Sanitize()
	}
	return c.JSON(http.StatusOK, usersResponse{Users: sanitized})
}

// Create handles POST /v1/admin/users.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account fields"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /v1/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	account, err := h.identity.Create(c.Request().Context(), ports.CreateAccountInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, account.Sanitize())
}

// Update handles PUT /v1/admin/users/:id. Absent fields are left untouched
// on the stored record.
//
// @Summary      Update an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Account id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid account id"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	account, err := h.identity.Update(c.Request().Context(), id, ports.UpdateAccountInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "account not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, account.Sanitize())
}

// Delete handles DELETE /v1/admin/users/:id. The calling account cannot
// delete itself; deleting an absent id succeeds.
//
// @Summary      Delete an account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Account id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /v1/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid account id"})
	}

	if callerID, ok := c.Get("user_id").(int); ok && callerID == id {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "you cannot delete your own account"})
	}

	if err := h.identity.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
