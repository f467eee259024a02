package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/mybae/storefront/storage/db"
)

// CurrentUser returns the signed-in user, if any.
func CurrentUser(c echo.Context) (*db.User, bool) {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
	if !isAuth {
		return nil, false
	}
	dbUser, ok := c.Get(DBUserKey).(*db.User)
	if !ok || dbUser == nil {
		return nil, false
	}
	return dbUser, true
}

// IsAdmin reports whether the current request is from an admin.
func IsAdmin(c echo.Context) bool {
	u, ok := CurrentUser(c)
	return ok && u.IsAdmin
}
