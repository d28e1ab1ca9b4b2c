package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"janoubco-monitor/internal/users"
)

// InjectUser loads the logged-in user's profile from the credential store and
// puts it on the request context, so pages always see current name, role and
// avatar even after an admin edited the account mid-session.
func InjectUser(svc *users.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if username, ok := sess.Get("username").(string); ok && username != "" {
			if profile, err := svc.GetUser(username); err == nil {
				c.Set("CurrentUser", profile)
			}
		}

		c.Next()
	}
}
