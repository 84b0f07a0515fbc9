package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Task analytics
// @Description  Total, completed, pending and overdue counts. Send Accept: application/json for the JSON form.
// @Tags         analytics
// @Produce      html,json
// @Success      200  {object}  models.Summary
// @Failure      500  {object}  map[string]string
// @Router       /analytics [get]
func (h *Handler) analytics(c *gin.Context) {
	uid := currentUserID(c)
	format := c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON)

	summary, err := h.services.Summarize(c.Request.Context(), uid)
	if err != nil {
		h.logFailure("analytics_summary_failed", err, "user_id", uid)
		if format == gin.MIMEJSON {
			c.JSON(http.StatusInternalServerError, gin.H{"error": errAnalyticsFailed})
			return
		}
		h.addFlash(c, flashDanger, msgSomethingFailed)
		redirectToIndex(c)
		return
	}

	if format == gin.MIMEJSON {
		c.JSON(http.StatusOK, summary)
		return
	}
	h.render(c, http.StatusOK, "analytics.html", gin.H{"Summary": summary})
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	if err := h.services.Ping(c.Request.Context()); err != nil {
		if h.log != nil {
			h.log.Errorw("health_ping_failed", "err", err)
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
