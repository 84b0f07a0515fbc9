package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.session.Secure, true)
}

// startSession stores the signed token; the cookie lives as long as the token.
func (h *Handler) startSession(c *gin.Context, token string) {
	h.setCookie(c, h.session.CookieName, token, int(h.session.TTL.Seconds()))
}

func (h *Handler) clearSession(c *gin.Context) {
	h.setCookie(c, h.session.CookieName, "", -1)
}
