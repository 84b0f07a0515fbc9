package handlers

import (
	"errors"

	"todo_manager/internal/models"
	"todo_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages.
const (
	msgUsernameTaken   = "Username already exists. Please choose another one."
	msgEmailTaken      = "Email already registered. Please log in."
	msgRegistered      = "Registration successful! Please log in."
	msgUnknownUser     = "Username does not exist. Please register."
	msgWrongPassword   = "Login failed. Incorrect password."
	msgLoggedIn        = "Login successful!"
	msgLoggedOut       = "You have logged out."
	msgEmptyContent    = "Please enter text for your task"
	msgContentTooLong  = "Task text is too long."
	msgInvalidDueDate  = "Invalid date format. Please use YYYY-MM-DD."
	msgTaskAdded       = "Task added successfully!"
	msgTaskToggled     = "Task status updated."
	msgTaskNotFound    = "Task not found or unauthorized action."
	msgTaskEdited      = "Task updated successfully."
	msgTaskDeleted     = "Task deleted successfully."
	msgAllResolved     = "All tasks marked as completed."
	msgLoginRequired   = "Please log in to access this page."
	msgMissingFields   = "Please fill in all fields."
	msgFieldTooLong    = "Username and email must be at most 100 characters."
	msgInvalidEmail    = "Please enter a valid email address."
	msgInvalidRange    = "'from' must be <= 'to'"
	msgSomethingFailed = "Something went wrong. Please try again."
)

// userMessage translates a service error into the flash text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		return msgEmptyContent
	case errors.Is(err, service.ErrContentTooLong):
		return msgContentTooLong
	case errors.Is(err, service.ErrInvalidDueDate):
		return msgInvalidDueDate
	case errors.Is(err, service.ErrMissingCredentials):
		return msgMissingFields
	case errors.Is(err, service.ErrFieldTooLong):
		return msgFieldTooLong
	case errors.Is(err, service.ErrInvalidTimeRange):
		return msgInvalidRange
	case errors.Is(err, service.ErrUsernameTaken):
		return msgUsernameTaken
	case errors.Is(err, service.ErrEmailTaken):
		return msgEmailTaken
	case errors.Is(err, service.ErrUserNotFound):
		return msgUnknownUser
	case errors.Is(err, service.ErrInvalidPassword):
		return msgWrongPassword
	case errors.Is(err, service.ErrNotFoundOrForbidden):
		return msgTaskNotFound
	default:
		return msgSomethingFailed
	}
}

// isUserError reports whether err stems from the request rather than the infrastructure.
func isUserError(err error) bool {
	return errors.Is(err, service.ErrValidation) ||
		errors.Is(err, service.ErrConflict) ||
		errors.Is(err, service.ErrAuth) ||
		errors.Is(err, service.ErrNotFoundOrForbidden)
}

// logFailure logs expected user errors at info and everything else at error level.
func (h *Handler) logFailure(event string, err error, kv ...any) {
	if h.log == nil {
		return
	}
	kv = append(kv, "err", err)
	if isUserError(err) {
		h.log.Infow(event, kv...)
		return
	}
	h.log.Errorw(event, kv...)
}

// fail logs err and flashes the matching message.
func (h *Handler) fail(c *gin.Context, event string, err error, kv ...any) {
	h.logFailure(event, err, kv...)
	h.addFlash(c, flashDanger, userMessage(err))
}

// render executes a page template with the pending flashes and the signed-in user.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = h.popFlashes(c)
	if u, ok := c.Get(ctxUser); ok {
		data["User"] = u
	}
	c.HTML(status, name, data)
}

// recordActivity appends to the user's trail. Failures are logged only.
func (h *Handler) recordActivity(c *gin.Context, userID int, typ, description string, meta any) {
	if h.services.ActivityLog == nil {
		return
	}
	err := h.services.Record(c.Request.Context(), models.Activity{
		UserID:      userID,
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil && h.log != nil {
		h.log.Errorw("activity_record_failed", "user_id", userID, "type", typ, "err", err)
	}
}
