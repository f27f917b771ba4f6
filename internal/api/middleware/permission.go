package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luxurydeals/catalog-console/internal/api/metrics"
	"github.com/luxurydeals/catalog-console/internal/core/domain"
)

// Permission gates a route on a single capability derived from the
// caller's role. It expects Auth to have run first.
func Permission(p domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !domain.RoleAllows(role, p) {
				metrics.PermissionDeniedTotal.WithLabelValues(string(p)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "you do not have permission to perform this action")
			}
			return next(c)
		}
	}
}
