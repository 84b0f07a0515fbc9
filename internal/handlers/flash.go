package handlers

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "flash"
	ctxFlashes  = "flashes"

	flashSuccess = "success"
	flashDanger  = "danger"

	// keeps the cookie well below browser size limits
	maxFlashes = 10
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func encodeFlashes(fl []Flash) string {
	raw, err := json.Marshal(fl)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeFlashes(s string) []Flash {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	var fl []Flash
	if err := json.Unmarshal(raw, &fl); err != nil {
		return nil
	}
	return fl
}

// pendingFlashes returns the flashes carried in by the request plus those
// added while handling it.
func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(ctxFlashes); ok {
		fl, _ := v.([]Flash)
		return fl
	}
	var fl []Flash
	if s, err := c.Cookie(flashCookie); err == nil && s != "" {
		fl = decodeFlashes(s)
	}
	c.Set(ctxFlashes, fl)
	return fl
}

func (h *Handler) addFlash(c *gin.Context, category, message string) {
	fl := append(pendingFlashes(c), Flash{Category: category, Message: message})
	if len(fl) > maxFlashes {
		fl = fl[len(fl)-maxFlashes:]
	}
	c.Set(ctxFlashes, fl)
	h.setCookie(c, flashCookie, encodeFlashes(fl), 0)
}

// popFlashes consumes all pending flashes and expires the cookie.
func (h *Handler) popFlashes(c *gin.Context) []Flash {
	fl := pendingFlashes(c)
	c.Set(ctxFlashes, []Flash(nil))
	if _, err := c.Cookie(flashCookie); err == nil || len(fl) > 0 {
		h.setCookie(c, flashCookie, "", -1)
	}
	return fl
}
