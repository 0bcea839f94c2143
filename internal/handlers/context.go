package handlers

import "github.com/labstack/echo/v4"

// getUserIDFromContext returns the authenticated user's ID, or 0 when
// the request carries no valid token (optional-auth routes).
func getUserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get("userID").(uint); ok {
		return id
	}
	return 0
}
