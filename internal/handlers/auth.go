package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "بيانات غير صالحة"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if form.Username == "" || form.Password == "" {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "يرجى إدخال اسم المستخدم وكلمة المرور"})
		return
	}

	profile, err := h.Users.Authenticate(form.Username, form.Password)
	if err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "اسم المستخدم أو كلمة المرور غير صحيحة"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("authenticated", true)
	sess.Set("username", profile.Username)
	sess.Set("role", string(profile.Role))
	sess.Set("name", profile.Name)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
