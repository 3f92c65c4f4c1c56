package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/geocoder89/infohub/internal/domain/user"
	kvrepo "github.com/geocoder89/infohub/internal/repo/kv"
	"github.com/gin-gonic/gin"
)

// Keep this small interface so tests can fake it easily.
type SessionReader interface {
	Current(ctx context.Context) (user.User, bool, error)
}

type SessionMiddleware struct {
	sessions SessionReader
}

func NewSessionMiddleware(sessions SessionReader) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// LoadSession stashes the signed-in user on the request context when there
// is one. An absent session just passes through; the Require* gates decide.
// A failing store is not an absent session: it aborts with the storage
// status so callers never see a misleading 401.
func (m *SessionMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok, err := m.sessions.Current(c.Request.Context())

		if err != nil {
			if errors.Is(err, kvrepo.ErrCorruptData) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{
						"code":    "corrupt_data",
						"message": "Stored data could not be read.",
					},
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": gin.H{
					"code":    "storage_unavailable",
					"message": "Storage is unavailable, please try again.",
				},
			})
			return
		}

		if ok {
			c.Set(CtxUser, u)
		}

		c.Next()
	}
}

// RequireUser aborts with 401 unless a session user was loaded.
func (m *SessionMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := UserFromContext(c)

		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Please log in first",
				},
			})
			return
		}

		c.Next()
	}
}

// RequireRole aborts with 403 unless the session user holds the role.
func (m *SessionMiddleware) RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := UserFromContext(c)

		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Please log in first",
				},
			})
			return
		}

		if u.Role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "forbidden",
					"message": "Tutor role required",
				},
			})
			return
		}

		c.Next()
	}
}

// UserFromContext avoids handlers knowing the magic key.
func UserFromContext(c *gin.Context) (user.User, bool) {
	v, ok := c.Get(CtxUser)

	if !ok {
		return user.User{}, false
	}

	u, ok := v.(user.User)

	return u, ok
}
