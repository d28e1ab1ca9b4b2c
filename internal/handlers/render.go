package handlers

import (
	"github.com/gin-gonic/gin"

	"janoubco-monitor/internal/models"
)

// render wraps c.HTML so every template sees the current user injected by
// middleware.InjectUser.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.Profile); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentUserRole"] = u.Role
		}
	}

	c.HTML(status, tmpl, data)
}

func currentProfile(c *gin.Context) (models.Profile, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.Profile{}, false
	}
	u, ok := uVal.(models.Profile)
	return u, ok
}
