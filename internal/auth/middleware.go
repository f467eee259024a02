package auth

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/labstack/echo/v4"
	"github.com/mybae/storefront/storage"
	"github.com/mybae/storefront/storage/db"
	"github.com/oklog/ulid/v2"
)

// Context keys for auth data stored on the request.
const (
	DBUserKey          = "db_user"
	IsAuthenticatedKey = "is_authenticated"
)

// SessionMiddleware verifies the Clerk session token and loads the
// matching user row. It is optional: unauthenticated requests pass
// through with IsAuthenticatedKey set to false.
func SessionMiddleware(storage *storage.Storage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractSessionToken(c.Request())
			if token == "" {
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			claims, err := jwt.Verify(c.Request().Context(), &jwt.VerifyParams{
				Token: token,
			})
			if err != nil {
				slog.Debug("session token rejected", "error", err)
				clearSessionCookie(c)
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			dbUser, err := getOrCreateUser(c.Request().Context(), storage, claims.Subject)
			if err != nil {
				slog.Error("failed to load session user", "error", err, "clerk_id", claims.Subject)
				c.Set(IsAuthenticatedKey, false)
				return next(c)
			}

			c.Set(DBUserKey, dbUser)
			c.Set(IsAuthenticatedKey, true)
			return next(c)
		}
	}
}

// RequireAdmin gates the admin console. Unauthenticated browser
// requests are redirected to the login page with the original URL
// carried in the next parameter so the console can return there after
// sign-in. Non-admin users get a plain 401.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
			if !isAuth {
				if wantsHTML(c.Request()) {
					next := url.QueryEscape(c.Request().URL.RequestURI())
					return c.Redirect(http.StatusFound, "/admin/login?next="+next)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			dbUser, ok := c.Get(DBUserKey).(*db.User)
			if !ok || dbUser == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}
			if !dbUser.IsAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "Admin access required")
			}

			return next(c)
		}
	}
}

func wantsHTML(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// extractSessionToken checks the Authorization header first, then the
// __session cookie set by the Clerk JS SDK.
func extractSessionToken(r *http.Request) string {
	if auth := strings.TrimSpace(r.Header.Get("Authorization")); auth != "" {
		if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
			return strings.TrimSpace(auth[7:])
		}
		return auth
	}

	if cookie, err := r.Cookie("__session"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// getOrCreateUser resolves a Clerk user id to a local row, creating
// one from the Clerk API on first sight.
func getOrCreateUser(ctx context.Context, storage *storage.Storage, clerkUserID string) (*db.User, error) {
	clerkID := sql.NullString{String: clerkUserID, Valid: true}
	dbUser, err := storage.Queries.GetUserByClerkID(ctx, clerkID)
	if err == nil {
		return &dbUser, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	userClient := user.NewClient(&clerk.ClientConfig{})
	clerkUser, err := userClient.Get(ctx, clerkUserID)
	if err != nil {
		return nil, err
	}

	created, err := storage.Queries.CreateUser(ctx, db.CreateUserParams{
		ID:      ulid.Make().String(),
		ClerkID: clerkID,
		Email:   primaryEmail(clerkUser),
	})
	if err != nil {
		return nil, err
	}
	slog.Info("created user from session", "user_id", created.ID, "clerk_id", clerkUserID)
	return &created, nil
}

func primaryEmail(u *clerk.User) string {
	if u.PrimaryEmailAddressID != nil {
		for _, email := range u.EmailAddresses {
			if email.ID == *u.PrimaryEmailAddressID {
				return email.EmailAddress
			}
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     "__session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
