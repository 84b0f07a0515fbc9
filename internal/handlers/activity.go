package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid  = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errLimitInvalid = "invalid 'limit'; use a positive integer"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}

// parseActivityFilter reads from/to/type/limit. A date-only 'to' covers the whole day.
// The returned string is the user-facing reason on failure.
func parseActivityFilter(c *gin.Context) (service.ActivityFilter, string) {
	var (
		f   service.ActivityFilter
		err error
	)
	f.Type = c.Query("type")

	if qs := c.Query("from"); qs != "" {
		if f.From, err = parseQueryTime(qs); err != nil {
			return f, errFromInvalid
		}
	}
	if qs := c.Query("to"); qs != "" {
		if f.To, err = parseQueryTime(qs); err != nil {
			return f, errToInvalid
		}
		if isDateOnly(qs) {
			f.To = f.To.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if qs := c.Query("limit"); qs != "" {
		if f.Limit, err = strconv.Atoi(qs); err != nil || f.Limit <= 0 {
			return f, errLimitInvalid
		}
	}
	return f, ""
}

// @Summary      Activity history
// @Description  The signed-in user's own trail, newest first. A date-only 'to' is end-of-day inclusive.
// @Tags         activity
// @Produce      html,json
// @Param        from   query  string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to     query  string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-31)
// @Param        type   query  string  false  "Activity type"  Enums(REGISTERED,LOGIN,LOGOUT,TASK_CREATED,TASK_TOGGLED,TASK_EDITED,TASK_DELETED,TASKS_RESOLVED)
// @Param        limit  query  int     false  "Max entries (default 50, max 500)"
// @Success      200  {object}  map[string]interface{}  "count, activities"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /activity [get]
func (h *Handler) activity(c *gin.Context) {
	uid := currentUserID(c)
	wantJSON := c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON

	filter, reason := parseActivityFilter(c)
	if reason != "" {
		if wantJSON {
			c.JSON(http.StatusBadRequest, gin.H{"error": reason})
			return
		}
		h.addFlash(c, flashDanger, reason)
		c.Redirect(http.StatusFound, "/activity")
		return
	}

	entries, err := h.services.History(c.Request.Context(), uid, filter)
	if err != nil {
		h.logFailure("activity_list_failed", err, "user_id", uid, "from", filter.From, "to", filter.To, "type", filter.Type)
		status, msg := http.StatusInternalServerError, "failed to load activity"
		if errors.Is(err, service.ErrValidation) {
			status, msg = http.StatusBadRequest, msgInvalidRange
		}
		if wantJSON {
			c.JSON(status, gin.H{"error": msg})
			return
		}
		h.addFlash(c, flashDanger, userMessage(err))
		if status == http.StatusBadRequest {
			c.Redirect(http.StatusFound, "/activity")
			return
		}
		redirectToIndex(c)
		return
	}

	if wantJSON {
		c.JSON(http.StatusOK, gin.H{
			"count":      len(entries),
			"activities": entries,
		})
		return
	}
	h.render(c, http.StatusOK, "activity.html", gin.H{
		"Activities": entries,
		"From":       c.Query("from"),
		"To":         c.Query("to"),
		"Type":       c.Query("type"),
	})
}
