package handlers

import (
	"errors"
	"net/http"

	"todo_manager/internal/models"
	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type registerInput struct {
	Username string `form:"username" binding:"required,max=100"`
	Email    string `form:"email" binding:"required,email,max=100"`
	Password string `form:"password" binding:"required"`
}

type loginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// bindingMessage picks the flash text for a failed form binding.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgMissingFields
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "email":
			return msgInvalidEmail
		case "max":
			return msgFieldTooLong
		}
	}
	return msgMissingFields
}

// bindFormOrRedirect binds the form into dst; on failure it flashes and redirects to back.
// Returns false if the request was already handled.
func (h *Handler) bindFormOrRedirect(c *gin.Context, dst any, back string) bool {
	if err := c.ShouldBind(dst); err != nil {
		if h.log != nil {
			h.log.Infow("form_bind_failed", "path", c.Request.URL.Path, "err", err)
		}
		h.addFlash(c, flashDanger, bindingMessage(err))
		c.Redirect(http.StatusFound, back)
		return false
	}
	return true
}

// @Summary      Landing page
// @Description  Redirects to /index with a valid session, otherwise to /register.
// @Tags         pages
// @Success      302
// @Router       / [get]
func (h *Handler) home(c *gin.Context) {
	if _, ok := h.sessionUser(c); ok {
		c.Redirect(http.StatusFound, "/index")
		return
	}
	c.Redirect(http.StatusFound, "/register")
}

func (h *Handler) registerPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", nil)
}

// @Summary      Register
// @Description  Creates an account. Duplicate username redirects to /register, duplicate email to /login.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username (max 100)"
// @Param        email     formData  string  true  "Email (max 100)"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerInput
	if ok := h.bindFormOrRedirect(c, &input, "/register"); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		h.fail(c, "auth_sign_up_failed", err, "username", input.Username)
		if errors.Is(err, service.ErrEmailTaken) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	h.recordActivity(c, id, models.ActivityRegistered, "Account created", nil)
	h.addFlash(c, flashSuccess, msgRegistered)
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", nil)
}

// @Summary      Log in
// @Description  Verifies credentials and sets the session cookie. Unknown user redirects to /register.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if ok := h.bindFormOrRedirect(c, &input, "/login"); !ok {
		return
	}

	token, uid, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.fail(c, "auth_sign_in_failed", err, "username", input.Username)
		if errors.Is(err, service.ErrUserNotFound) {
			c.Redirect(http.StatusFound, "/register")
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.startSession(c, token)
	h.recordActivity(c, uid, models.ActivityLogin, "Logged in", nil)
	h.addFlash(c, flashSuccess, msgLoggedIn)
	c.Redirect(http.StatusFound, "/index")
}

// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	h.recordActivity(c, currentUserID(c), models.ActivityLogout, "Logged out", nil)
	h.clearSession(c)
	h.addFlash(c, flashSuccess, msgLoggedOut)
	c.Redirect(http.StatusFound, "/login")
}
