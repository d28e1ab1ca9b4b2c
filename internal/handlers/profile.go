package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"janoubco-monitor/internal/users"
)

// minPasswordLen is enforced at the form boundary; the service itself does
// not re-check it.
const minPasswordLen = 6

func (h *Handlers) ShowProfile(c *gin.Context) {
	render(c, http.StatusOK, "profile.html", gin.H{"error": "", "message": ""})
}

func profileError(c *gin.Context, msg string) {
	render(c, http.StatusBadRequest, "profile.html", gin.H{"error": msg, "message": ""})
}

// UpdateProfile lets a user edit their own name and email.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	if name == "" {
		profileError(c, "يرجى إدخال الاسم")
		return
	}

	upd := users.Updates{Name: &name, Email: &email}
	if err := h.Users.UpdateUser(profile.Username, profile.Role, upd); err != nil {
		profileError(c, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

func (h *Handlers) UploadAvatar(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		profileError(c, "يرجى اختيار صورة")
		return
	}

	src, err := file.Open()
	if err != nil {
		profileError(c, "خطأ في قراءة الصورة")
		return
	}
	defer src.Close()

	if err := h.Users.UploadAvatar(profile.Username, src); err != nil {
		profileError(c, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}

func (h *Handlers) ChangePassword(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	oldPassword := c.PostForm("old_password")
	newPassword := c.PostForm("new_password")
	confirm := c.PostForm("confirm_password")

	if len(newPassword) < minPasswordLen {
		profileError(c, "كلمة المرور الجديدة قصيرة جداً")
		return
	}
	if newPassword != confirm {
		profileError(c, "كلمتا المرور غير متطابقتين")
		return
	}

	if err := h.Users.ChangePassword(profile.Username, oldPassword, newPassword); err != nil {
		profileError(c, err.Error())
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{"error": "", "message": "تم تغيير كلمة المرور بنجاح"})
}
