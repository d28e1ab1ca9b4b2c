package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"janoubco-monitor/internal/models"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		authed, _ := sess.Get("authenticated").(bool)
		if !authed {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		// the account may have been deleted since login; drop the session
		if _, ok := c.Get("CurrentUser"); !ok {
			sess.Clear()
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireRole(roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, ok := sess.Get("role").(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if _, ok := roleSet[models.Role(roleStr)]; !ok {
			c.String(http.StatusForbidden, "غير مصرح بالدخول")
			c.Abort()
			return
		}
		c.Next()
	}
}
