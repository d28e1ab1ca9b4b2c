package server

import (
	"crypto/sha256"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/pbkdf2"

	"janoubco-monitor/internal/config"
	"janoubco-monitor/internal/handlers"
	"janoubco-monitor/internal/inventory"
	"janoubco-monitor/internal/middleware"
	"janoubco-monitor/internal/models"
	"janoubco-monitor/internal/users"
)

// sessionKeys derives the cookie store's auth and encryption keys from the
// configured secret, so the secret itself never acts as a raw key.
func sessionKeys(secret string) ([]byte, []byte) {
	authKey := pbkdf2.Key([]byte(secret), []byte("janoubco-session-auth"), 4096, 32, sha256.New)
	encKey := pbkdf2.Key([]byte(secret), []byte("janoubco-session-enc"), 4096, 32, sha256.New)
	return authKey, encKey
}

func NewRouter(cfg *config.Config, usersSvc *users.Service, inv *inventory.Service) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.Static("/avatars", cfg.AvatarsDir)
	r.LoadHTMLGlob("web/templates/*.html")

	authKey, encKey := sessionKeys(cfg.SessionSecret)
	store := cookie.NewStore(authKey, encKey)
	r.Use(sessions.Sessions("janoubco_session", store))

	r.Use(middleware.InjectUser(usersSvc))

	h := handlers.New(usersSvc, inv)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DASHBOARD
	auth.GET("/", h.Dashboard)

	// EXPORT
	auth.GET("/export",
		middleware.RequireRole(models.RoleSuperAdmin, models.RoleAdmin),
		h.Export,
	)

	// PROFILE
	auth.GET("/profile", h.ShowProfile)
	auth.POST("/profile", h.UpdateProfile)
	auth.POST("/profile/avatar", h.UploadAvatar)
	auth.POST("/profile/password", h.ChangePassword)

	// USER ADMINISTRATION
	admin := auth.Group("/users")
	admin.Use(middleware.RequireRole(models.RoleSuperAdmin, models.RoleAdmin))
	admin.GET("", h.ListUsers)
	admin.POST("", h.CreateUser)
	admin.GET("/:username/edit", h.ShowEditUser)
	admin.POST("/:username/edit", h.UpdateUser)
	admin.POST("/:username/delete", h.DeleteUser)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
