package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing user id means the
// middleware did not run or the token carried no subject.
func ctxIdentity(c echo.Context) (userID string, isAdmin bool, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	isAdmin, _ = c.Get("admin").(bool)
	return userID, isAdmin, nil
}
