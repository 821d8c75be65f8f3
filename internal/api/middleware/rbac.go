package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventoryapi/inventory-system/internal/api/metrics"
	"github.com/inventoryapi/inventory-system/internal/core/policy"
)

// Authorize enforces the access policy for op against the role claim set by
// Auth. Requests without a role claim never got through authentication and
// are rejected as unauthorized, not forbidden.
func Authorize(op policy.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !policy.Allowed(role, op) {
				metrics.ForbiddenTotal.WithLabelValues(string(op)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
