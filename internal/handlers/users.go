package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"janoubco-monitor/internal/models"
	"janoubco-monitor/internal/users"
)

func (h *Handlers) listUsersPage(c *gin.Context, status int, errMsg string) {
	list, err := h.Users.ListUsers()
	if err != nil && errMsg == "" {
		errMsg = "خطأ في تحميل المستخدمين"
	}

	render(c, status, "users_list.html", gin.H{
		"users": list,
		"error": errMsg,
	})
}

func (h *Handlers) ListUsers(c *gin.Context) {
	h.listUsersPage(c, http.StatusOK, "")
}

// CreateUser adds an account from the admin page. Only admin and viewer are
// offered by the form; the service rejects anything else.
func (h *Handlers) CreateUser(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	name := strings.TrimSpace(c.PostForm("name"))
	role := models.Role(c.PostForm("role"))
	email := strings.TrimSpace(c.PostForm("email"))

	if len(username) < 3 {
		h.listUsersPage(c, http.StatusBadRequest, "اسم المستخدم قصير جداً")
		return
	}
	if len(password) < minPasswordLen {
		h.listUsersPage(c, http.StatusBadRequest, "كلمة المرور قصيرة جداً")
		return
	}
	if name == "" {
		name = username
	}

	if err := h.Users.AddUser(username, password, name, role, email); err != nil {
		h.listUsersPage(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/users")
}

func (h *Handlers) ShowEditUser(c *gin.Context) {
	target, err := h.Users.GetUser(c.Param("username"))
	if err != nil {
		c.String(http.StatusNotFound, "المستخدم غير موجود")
		return
	}

	render(c, http.StatusOK, "users_edit.html", gin.H{
		"user":  target,
		"error": "",
	})
}

func (h *Handlers) UpdateUser(c *gin.Context) {
	acting, ok := currentProfile(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	target, err := h.Users.GetUser(c.Param("username"))
	if err != nil {
		c.String(http.StatusNotFound, "المستخدم غير موجود")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if password != "" && len(password) < minPasswordLen {
		render(c, http.StatusBadRequest, "users_edit.html", gin.H{
			"user":  target,
			"error": "كلمة المرور قصيرة جداً",
		})
		return
	}

	upd := users.Updates{Name: &name, Email: &email, Password: &password}
	if roleStr := c.PostForm("role"); roleStr != "" {
		role := models.Role(roleStr)
		upd.Role = &role
	}

	if err := h.Users.UpdateUser(target.Username, acting.Role, upd); err != nil {
		render(c, http.StatusBadRequest, "users_edit.html", gin.H{
			"user":  target,
			"error": err.Error(),
		})
		return
	}

	c.Redirect(http.StatusFound, "/users")
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	if err := h.Users.DeleteUser(c.Param("username")); err != nil {
		h.listUsersPage(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/users")
}
