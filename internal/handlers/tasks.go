package handlers

import (
	"net/http"
	"strconv"
	"time"

	"todo_manager/internal/models"

	"github.com/gin-gonic/gin"
)

type addTaskInput struct {
	Content string `form:"content"`
	DueDate string `form:"due_date"`
}

type toggleInput struct {
	TaskID int `form:"task_id" binding:"required"`
}

type editInput struct {
	TaskID   int    `form:"task_id" binding:"required"`
	EditText string `form:"edit_text"`
}

func redirectToIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/index")
}

// bindTaskForm binds a task mutation form. A missing or malformed task id is
// reported like a foreign task.
func (h *Handler) bindTaskForm(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		if h.log != nil {
			h.log.Infow("task_form_bind_failed", "path", c.Request.URL.Path, "err", err)
		}
		h.addFlash(c, flashDanger, msgTaskNotFound)
		redirectToIndex(c)
		return false
	}
	return true
}

func pendingCount(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Done {
			n++
		}
	}
	return n
}

// @Summary      Task list
// @Description  Renders the signed-in user's tasks with the number still pending.
// @Tags         tasks
// @Produce      html
// @Success      200
// @Router       /index [get]
func (h *Handler) index(c *gin.Context) {
	uid := currentUserID(c)
	tasks, err := h.services.ListTasks(c.Request.Context(), uid)
	if err != nil {
		h.logFailure("task_list_failed", err, "user_id", uid)
		h.addFlash(c, flashDanger, msgSomethingFailed)
	}

	h.render(c, http.StatusOK, "index.html", gin.H{
		"Tasks":   tasks,
		"Pending": pendingCount(tasks),
		"Now":     time.Now(),
	})
}

// @Summary      Add task
// @Tags         tasks
// @Accept       x-www-form-urlencoded
// @Param        content   formData  string  true   "Task text (max 200)"
// @Param        due_date  formData  string  false  "Due date, YYYY-MM-DD"
// @Success      302
// @Router       /task [post]
func (h *Handler) addTask(c *gin.Context) {
	var input addTaskInput
	if err := c.ShouldBind(&input); err != nil && h.log != nil {
		// fall through: the service reports the empty content
		h.log.Infow("task_form_bind_failed", "path", c.Request.URL.Path, "err", err)
	}
	uid := currentUserID(c)

	task, err := h.services.AddTask(c.Request.Context(), uid, input.Content, input.DueDate)
	if err != nil {
		h.fail(c, "task_add_failed", err, "user_id", uid)
		redirectToIndex(c)
		return
	}

	h.recordActivity(c, uid, models.ActivityTaskCreated, "Added task: "+task.Content,
		gin.H{"task_id": task.ID, "due_date": task.DueDateString()})
	h.addFlash(c, flashSuccess, msgTaskAdded)
	redirectToIndex(c)
}

// @Summary      Toggle task
// @Tags         tasks
// @Accept       x-www-form-urlencoded
// @Param        task_id  formData  int  true  "Task id"
// @Success      302
// @Router       /toggle [post]
func (h *Handler) toggleTask(c *gin.Context) {
	var input toggleInput
	if ok := h.bindTaskForm(c, &input); !ok {
		return
	}
	uid := currentUserID(c)

	task, err := h.services.ToggleTask(c.Request.Context(), uid, input.TaskID)
	if err != nil {
		h.fail(c, "task_toggle_failed", err, "user_id", uid, "task_id", input.TaskID)
		redirectToIndex(c)
		return
	}

	h.recordActivity(c, uid, models.ActivityTaskToggled, "Toggled task: "+task.Content,
		gin.H{"task_id": task.ID, "done": task.Done})
	h.addFlash(c, flashSuccess, msgTaskToggled)
	redirectToIndex(c)
}

// @Summary      Edit task text
// @Tags         tasks
// @Accept       x-www-form-urlencoded
// @Param        task_id    formData  int     true  "Task id"
// @Param        edit_text  formData  string  true  "New text (max 200)"
// @Success      302
// @Router       /edit [post]
func (h *Handler) editTask(c *gin.Context) {
	var input editInput
	if ok := h.bindTaskForm(c, &input); !ok {
		return
	}
	uid := currentUserID(c)

	task, err := h.services.EditTask(c.Request.Context(), uid, input.TaskID, input.EditText)
	if err != nil {
		h.fail(c, "task_edit_failed", err, "user_id", uid, "task_id", input.TaskID)
		redirectToIndex(c)
		return
	}

	h.recordActivity(c, uid, models.ActivityTaskEdited, "Edited task: "+task.Content,
		gin.H{"task_id": task.ID})
	h.addFlash(c, flashSuccess, msgTaskEdited)
	redirectToIndex(c)
}

// @Summary      Delete task
// @Tags         tasks
// @Param        taskId  path  int  true  "Task id"
// @Success      302
// @Router       /delete/{taskId} [get]
func (h *Handler) deleteTask(c *gin.Context) {
	uid := currentUserID(c)
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		if h.log != nil {
			h.log.Infow("task_delete_bad_id", "user_id", uid, "task_id", c.Param("taskId"))
		}
		h.addFlash(c, flashDanger, msgTaskNotFound)
		redirectToIndex(c)
		return
	}

	if err := h.services.DeleteTask(c.Request.Context(), uid, taskID); err != nil {
		h.fail(c, "task_delete_failed", err, "user_id", uid, "task_id", taskID)
		redirectToIndex(c)
		return
	}

	h.recordActivity(c, uid, models.ActivityTaskDeleted, "Deleted task", gin.H{"task_id": taskID})
	h.addFlash(c, flashSuccess, msgTaskDeleted)
	redirectToIndex(c)
}

// @Summary      Resolve all tasks
// @Description  Marks every task of the signed-in user as done.
// @Tags         tasks
// @Success      302
// @Router       /finished [get]
func (h *Handler) resolveAll(c *gin.Context) {
	uid := currentUserID(c)

	n, err := h.services.ResolveAll(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, "task_resolve_all_failed", err, "user_id", uid)
		redirectToIndex(c)
		return
	}

	h.recordActivity(c, uid, models.ActivityTasksResolved, "Marked all tasks as completed",
		gin.H{"resolved": n})
	h.addFlash(c, flashSuccess, msgAllResolved)
	redirectToIndex(c)
}
