package handlers

import (
	"errors"
	"net/http"
	"time"

	"todo_manager/internal/models"
	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys.
const (
	ctxUserID    = "userId"
	ctxUser      = "user"
	ctxRequestID = "requestId"

	requestIDHeader = "X-Request-ID"
)

// requestLogger tags every request with an id and logs its outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(ctxRequestID, reqID)
	c.Header(requestIDHeader, reqID)

	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", reqID,
		)
	}
}

// sessionUser resolves the user behind the session cookie, if any.
// A deleted user or a tampered/expired token counts as no session.
func (h *Handler) sessionUser(c *gin.Context) (*models.User, bool) {
	token, err := c.Cookie(h.session.CookieName)
	if err != nil || token == "" {
		return nil, false
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("session_invalid", "err", err)
		}
		return nil, false
	}

	user, err := h.services.GetUser(c.Request.Context(), userID)
	if err != nil {
		if h.log != nil && !errors.Is(err, service.ErrAuth) {
			h.log.Errorw("session_user_lookup_failed", "user_id", userID, "err", err)
		}
		return nil, false
	}
	return user, true
}

func (h *Handler) hasSessionCookie(c *gin.Context) bool {
	_, err := c.Cookie(h.session.CookieName)
	return err == nil
}

// sessionMiddleware guards HTML routes: without a valid session the visitor
// is sent to the login page with a flash message.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		if h.hasSessionCookie(c) {
			h.clearSession(c)
		}
		h.addFlash(c, flashDanger, msgLoginRequired)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set(ctxUserID, user.ID)
	c.Set(ctxUser, user)
	c.Next()
}

// apiSessionMiddleware is the machine-facing variant used by the websocket.
func (h *Handler) apiSessionMiddleware(c *gin.Context) {
	user, ok := h.sessionUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing or invalid session",
		})
		return
	}

	c.Set(ctxUserID, user.ID)
	c.Set(ctxUser, user)
	c.Next()
}

func currentUserID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}
